package seeder

import (
	"context"
	"fmt"
	"log"

	"qr-attendance/models"
	"qr-attendance/services"
)

// SeedAdmin creates the bootstrap admin account unless the username is already taken.
func SeedAdmin(ctx context.Context, staff *services.StaffService, username, password string) error {
	existing, err := staff.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("check admin %s: %w", username, err)
	}
	if existing != nil {
		log.Printf("Admin %q already exists, skipping seed", username)
		return nil
	}

	admin, err := staff.RegisterStaff(ctx, models.StaffRegisterPayload{
		FirstName:  "System",
		LastName:   "Administrator",
		Department: "Administration",
		Role:       string(models.RoleAdmin),
		Username:   username,
		Password:   password,
	}, "")
	if err != nil {
		return fmt.Errorf("seed admin %s: %w", username, err)
	}
	log.Printf("Admin %q seeded with staff id %d", admin.Username, admin.StaffID)
	return nil
}
