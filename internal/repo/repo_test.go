package repo

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"ev-storefront/internal/database"
	"ev-storefront/internal/domain"
)

var testDB *sql.DB

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("storefront"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("warning: postgres container not started: %v", err)
		os.Exit(m.Run())
	}

	code := func() int {
		defer func() {
			if err := testcontainers.TerminateContainer(container); err != nil {
				log.Printf("terminate container: %v", err)
			}
		}()

		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			log.Printf("connection string: %v", err)
			return 1
		}
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			log.Printf("open db: %v", err)
			return 1
		}
		defer db.Close()

		if err := database.Migrate(ctx, db); err != nil {
			log.Printf("migrate: %v", err)
			return 1
		}
		testDB = db
		return m.Run()
	}()
	os.Exit(code)
}

func requireDB(t *testing.T) *sql.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("postgres container not available")
	}
	return testDB
}

func seedCatalog(t *testing.T, db *sql.DB) []domain.Product {
	t.Helper()
	_, err := NewProductRepo(db).Seed(context.Background(), database.Catalog())
	require.NoError(t, err)
	return database.Catalog()
}

func createUser(t *testing.T, db *sql.DB) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           uuid.New(),
		Name:         "Test Driver",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, NewUserRepo(db).CreateUser(context.Background(), u))
	return u
}

func TestProductRepo_SeedAndFind(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	r := NewProductRepo(db)
	catalog := seedCatalog(t, db)

	n, err := r.Seed(ctx, catalog)
	require.NoError(t, err)
	assert.Zero(t, n, "second seed must be a no-op")

	all, err := r.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(catalog))
	assert.Equal(t, "Model 3", all[0].Name)

	p, err := r.FindById(ctx, database.ProductID("Model S"))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, int64(89990), p.BasePrice)
	assert.Equal(t, "#171A20", p.Configurations.Colors[1].Hex)
	assert.Equal(t, "396 mi", p.Specifications.Range)
	assert.Len(t, p.Images, 2)

	missing, err := r.FindById(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestOrderRepo_CreateAndFind(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	seedCatalog(t, db)
	user := createUser(t, db)
	r := NewOrderRepo(db)

	order := &domain.Order{
		ID:        uuid.New(),
		UserID:    user.ID,
		ProductID: database.ProductID("Model 3"),
		Configuration: domain.Configuration{
			Variant:  "Long Range",
			Color:    "Solid Black",
			Wheels:   `18" Aero Wheels`,
			Interior: "All Black",
		},
		TotalPrice: 48990,
		ShippingAddress: domain.ShippingAddress{
			Street:  "123 Demo St",
			City:    "Demo City",
			State:   "Demo State",
			ZipCode: "12345",
			Country: "Demo Country",
		},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, r.CreateOrder(ctx, order))

	got, err := r.FindById(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, order.Configuration, got.Configuration)
	assert.Equal(t, order.ShippingAddress, got.ShippingAddress)
	assert.Equal(t, order.TotalPrice, got.TotalPrice)
	assert.True(t, order.CreatedAt.Equal(got.CreatedAt))

	dup := *order
	assert.Error(t, r.CreateOrder(ctx, &dup), "primary key must reject a second insert")
}

func TestOrderRepo_CreateOrderUnknownProductWritesNothing(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	user := createUser(t, db)
	r := NewOrderRepo(db)

	order := &domain.Order{
		ID:        uuid.New(),
		UserID:    user.ID,
		ProductID: uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
	require.Error(t, r.CreateOrder(ctx, order))

	got, err := r.FindById(ctx, order.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOrderRepo_Unpublished(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	seedCatalog(t, db)
	user := createUser(t, db)
	r := NewOrderRepo(db)

	order := &domain.Order{
		ID:        uuid.New(),
		UserID:    user.ID,
		ProductID: database.ProductID("Model X"),
		Configuration: domain.Configuration{
			Variant: "Dual Motor", Color: "Pearl White Multi-Coat",
			Wheels: `20" Cyberstream Wheels`, Interior: "All Black",
		},
		TotalPrice: 99990,
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, r.CreateOrder(ctx, order))

	pending, err := r.FindUnpublished(ctx, 1000)
	require.NoError(t, err)
	assert.True(t, containsOrder(pending, order.ID))

	require.NoError(t, r.MarkPublished(ctx, order.ID, time.Now().UTC()))

	pending, err = r.FindUnpublished(ctx, 1000)
	require.NoError(t, err)
	assert.False(t, containsOrder(pending, order.ID))
}

func TestUserRepo_CreateAndFind(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	r := NewUserRepo(db)
	user := createUser(t, db)

	got, err := r.FindByEmail(ctx, user.Email)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)

	dup := *user
	dup.ID = uuid.New()
	assert.ErrorIs(t, r.CreateUser(ctx, &dup), domain.ErrEmailTaken)

	none, err := r.FindByEmail(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, none)
}

func containsOrder(orders []domain.Order, id uuid.UUID) bool {
	for _, o := range orders {
		if o.ID == id {
			return true
		}
	}
	return false
}
