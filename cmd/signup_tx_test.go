package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/desafio/car-users-api/internal/handlers"
	"github.com/desafio/car-users-api/internal/jwt"
	"github.com/desafio/car-users-api/internal/middlewares"
	"github.com/desafio/car-users-api/internal/repositories"
	"github.com/desafio/car-users-api/internal/services"
)

// Signup inserts the user plus every payload car. When one of the cars hits
// a duplicate plate, nothing from the request may survive.
func TestSignupRollsBackOnPayloadCarConflict(t *testing.T) {
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	dsn := fmt.Sprintf("postgres://user:password@%s:%d/testdb?sslmode=disable", pgHost, pgPort.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	schema := `
	CREATE TABLE users (
		id BIGSERIAL PRIMARY KEY,
		login VARCHAR(50) NOT NULL UNIQUE,
		email VARCHAR(100) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		first_name VARCHAR(100) NOT NULL DEFAULT '',
		last_name VARCHAR(100) NOT NULL DEFAULT '',
		birthday DATE,
		phone VARCHAR(30) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE cars (
		id BIGSERIAL PRIMARY KEY,
		license_plate VARCHAR(20) NOT NULL UNIQUE,
		model VARCHAR(100) NOT NULL,
		color VARCHAR(50) NOT NULL,
		year INT NOT NULL CHECK (year > 0),
		user_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	// The second payload car will collide with this plate.
	_, err = db.Exec(`INSERT INTO cars (license_plate, model, color, year) VALUES ('XYZ-9876', 'Civic', 'White', 2021)`)
	assert.NoError(t, err)

	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	carWriteRepo := repositories.NewCarWriteRepository(db, middlewares.GetTxFromContext)
	jwtSvc := jwt.New("testsecret", time.Minute)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, carWriteRepo, jwtSvc)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/api/signup", handlers.NewSignupHandler(authService))
	})

	body := `{
		"firstName": "John", "lastName": "Doe",
		"email": "john@example.com", "birthday": "1990-05-01",
		"login": "johndoe", "password": "secret123", "phone": "+5511999999999",
		"cars": [
			{"year": 2020, "licensePlate": "ABC-1234", "model": "Corolla", "color": "Black"},
			{"year": 2021, "licensePlate": "XYZ-9876", "model": "Civic", "color": "White"}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/signup", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"message":"License plate already exists","errorCode":409}`, rr.Body.String())

	var userCount int
	assert.NoError(t, db.Get(&userCount, `SELECT COUNT(*) FROM users WHERE login = 'johndoe'`))
	assert.Zero(t, userCount)

	var carCount int
	assert.NoError(t, db.Get(&carCount, `SELECT COUNT(*) FROM cars WHERE license_plate = 'ABC-1234'`))
	assert.Zero(t, carCount)

	// A clean signup through the same route still commits.
	req = httptest.NewRequest(http.MethodPost, "/api/signup", bytes.NewBufferString(`{
		"firstName": "Jane", "lastName": "Doe",
		"email": "jane@example.com", "login": "janedoe", "password": "secret123"
	}`))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.NoError(t, db.Get(&userCount, `SELECT COUNT(*) FROM users WHERE login = 'janedoe'`))
	assert.Equal(t, 1, userCount)
}
