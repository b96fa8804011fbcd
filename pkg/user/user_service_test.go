package user

import (
	migration "FoodBridge-Backend/cmd/database/migrate"
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"FoodBridge-Backend/pkg/jwt"
	"FoodBridge-Backend/pkg/location"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newUserTest(t *testing.T) (UserService, *entities.Location) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, migration.Migrate(db))

	loc := &entities.Location{
		Province:      "East Java",
		City:          "Surabaya",
		ZipCode:       "60293",
		StreetAddress: "Jl. Pemuda 5",
	}
	require.NoError(t, db.Create(loc).Error)

	service := NewUserService(NewUserRepository(db), location.NewLocationRepository(db), jwt.NewJWTService())
	return service, loc
}

func registerRequest(locationID uint) domain.RegisterRequest {
	return domain.RegisterRequest{
		FullName:      "Budi Santoso",
		Occupation:    string(entities.OccupationRestaurant),
		LocationID:    locationID,
		ContactNumber: "+6281234567890",
		Email:         "budi@example.com",
		Password:      "supersecret",
	}
}

func TestRegister(t *testing.T) {
	service, loc := newUserTest(t)

	response, err := service.Register(context.Background(), registerRequest(loc.ID))
	require.NoError(t, err)

	assert.NotZero(t, response.ID)
	assert.Equal(t, "budi@example.com", response.Email)
	assert.Equal(t, string(entities.OccupationRestaurant), response.Occupation)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, loc := newUserTest(t)

	_, err := service.Register(context.Background(), registerRequest(loc.ID))
	require.NoError(t, err)

	req := registerRequest(loc.ID)
	req.FullName = "Another Budi"
	_, err = service.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterInvalidOccupation(t *testing.T) {
	service, loc := newUserTest(t)

	req := registerRequest(loc.ID)
	req.Occupation = "Astronaut"
	_, err := service.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidOccupation)
}

func TestRegisterEmptyOccupationAllowed(t *testing.T) {
	service, loc := newUserTest(t)

	req := registerRequest(loc.ID)
	req.Occupation = ""
	_, err := service.Register(context.Background(), req)
	assert.NoError(t, err)
}

func TestRegisterInvalidContactNumber(t *testing.T) {
	service, loc := newUserTest(t)

	req := registerRequest(loc.ID)
	req.ContactNumber = "0812-3456"
	_, err := service.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidContactNumber)
}

func TestRegisterLocationNotFound(t *testing.T) {
	service, _ := newUserTest(t)

	req := registerRequest(9999)
	_, err := service.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestLogin(t *testing.T) {
	service, loc := newUserTest(t)

	registered, err := service.Register(context.Background(), registerRequest(loc.ID))
	require.NoError(t, err)
	require.NoError(t, service.AssignRole(context.Background(), registered.ID, domain.AssignRoleRequest{
		Role: string(entities.RoleSupplier),
	}))

	response, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "budi@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, []string{string(entities.RoleSupplier)}, response.Roles)
}

func TestLoginWrongPassword(t *testing.T) {
	service, loc := newUserTest(t)

	_, err := service.Register(context.Background(), registerRequest(loc.ID))
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "budi@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	service, _ := newUserTest(t)

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAssignRole(t *testing.T) {
	service, loc := newUserTest(t)

	registered, err := service.Register(context.Background(), registerRequest(loc.ID))
	require.NoError(t, err)

	require.NoError(t, service.AssignRole(context.Background(), registered.ID, domain.AssignRoleRequest{
		Role: string(entities.RoleSupplier),
	}))

	// the same user may hold both roles
	require.NoError(t, service.AssignRole(context.Background(), registered.ID, domain.AssignRoleRequest{
		Role: string(entities.RoleRecipient),
	}))

	me, err := service.Me(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		string(entities.RoleSupplier),
		string(entities.RoleRecipient),
	}, me.Roles)
}

func TestAssignRoleDuplicate(t *testing.T) {
	service, loc := newUserTest(t)

	registered, err := service.Register(context.Background(), registerRequest(loc.ID))
	require.NoError(t, err)

	require.NoError(t, service.AssignRole(context.Background(), registered.ID, domain.AssignRoleRequest{
		Role: string(entities.RoleRecipient),
	}))
	err = service.AssignRole(context.Background(), registered.ID, domain.AssignRoleRequest{
		Role: string(entities.RoleRecipient),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateRole)
}

func TestAssignRoleInvalid(t *testing.T) {
	service, loc := newUserTest(t)

	registered, err := service.Register(context.Background(), registerRequest(loc.ID))
	require.NoError(t, err)

	err = service.AssignRole(context.Background(), registered.ID, domain.AssignRoleRequest{Role: "Admin"})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestMeNotFound(t *testing.T) {
	service, _ := newUserTest(t)

	_, err := service.Me(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
