package seed

import (
	"context"
	"errors"

	apperrors "userhub/internal/errors"
	"userhub/internal/service"
)

// DemoUser is one entry of the demo data set.
type DemoUser struct {
	Username string
	Email    string
	Password string
	Age      int
	Phone    string // empty means no phone on record
}

// DemoUsers returns the demo data set. Insertion order matters: ids
// are assigned 1..10 in this order on an empty store.
func DemoUsers() []DemoUser {
	return []DemoUser{
		{Username: "john_doe", Email: "john@example.com", Password: "password123", Age: 30, Phone: "+15551234567"},
		{Username: "jane_smith", Email: "jane@example.com", Password: "securepass456", Age: 25, Phone: "+14155551234"},
		{Username: "bob_wilson", Email: "bob@example.com", Password: "mypass789", Age: 35},
		{Username: "alice_johnson", Email: "alice@example.com", Password: "alicepass", Age: 28, Phone: "+12125551234"},
		{Username: "charlie_brown", Email: "charlie@example.com", Password: "charlie123", Age: 22},
		{Username: "test_user", Email: "test.user@example.com", Password: "Test@123", Age: 40},
		{Username: "admin_user", Email: "admin@company.com", Password: "Admin@2024", Age: 45, Phone: "+19175551234"},
		{Username: "max_age", Email: "maxage@example.com", Password: "maxage123", Age: 150},
		{Username: "min_age", Email: "minage@example.com", Password: "minage123", Age: 18},
		{Username: "very_long_username_that_is_close_to_fifty_chars", Email: "longuser@example.com", Password: "longpass123", Age: 30},
	}
}

// Apply registers the demo users through the service, skipping any
// username that already exists. Returns the number actually created.
func Apply(ctx context.Context, svc service.UserService) (int, error) {
	seeded := 0
	for _, du := range DemoUsers() {
		in := service.RegisterInput{
			Username: du.Username,
			Email:    du.Email,
			Password: du.Password,
			Age:      du.Age,
		}
		if du.Phone != "" {
			phone := du.Phone
			in.Phone = &phone
		}
		if _, err := svc.Register(ctx, in); err != nil {
			if errors.Is(err, apperrors.ErrUsernameExists) {
				continue
			}
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}
