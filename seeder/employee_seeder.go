package seeder

import (
	"context"
	"fmt"
	"log"

	"qr-attendance/models"
	"qr-attendance/services"
)

var demoEmployees = []models.EmployeeRegisterPayload{
	{FirstName: "Jane", LastName: "Doe", Department: "Engineering"},
	{FirstName: "John", LastName: "Smith", Department: "Engineering"},
	{FirstName: "Amara", LastName: "Okafor", Department: "Finance"},
	{FirstName: "Luis", LastName: "Garcia", Department: "Human Resources"},
	{FirstName: "Mei", LastName: "Tanaka", Department: "Customer Support"},
	{FirstName: "Priya", LastName: "Sharma", Department: "Logistics"},
}

// SeedDemoEmployees registers a handful of employees when the collection is empty.
func SeedDemoEmployees(ctx context.Context, employees *services.EmployeeService) error {
	existing, err := employees.ListEmployees(ctx)
	if err != nil {
		return fmt.Errorf("check employees: %w", err)
	}
	if len(existing) > 0 {
		log.Printf("%d employees already exist, skipping demo seed", len(existing))
		return nil
	}

	for _, payload := range demoEmployees {
		e, err := employees.RegisterEmployee(ctx, payload, "")
		if err != nil {
			return fmt.Errorf("seed employee %s %s: %w", payload.FirstName, payload.LastName, err)
		}
		log.Printf("Employee %s seeded with id %d", e.FullName(), e.UserID)
	}
	return nil
}
