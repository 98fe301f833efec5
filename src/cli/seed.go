package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ealert.io/src/models"
)

type seedUser struct {
	Name    string
	Age     string
	Gender  string
	Address string
	Contact string
	Code    string
}

// sampleUsers are the development fixtures. Codes go through the same
// hashing as real registrations.
var sampleUsers = []seedUser{
	{Name: "John Doe", Age: "30", Gender: "Male", Address: "123 Main St, New York, NY", Contact: "555-0123", Code: "12345"},
	{Name: "Jane Smith", Age: "28", Gender: "Female", Address: "456 Oak Ave, Los Angeles, CA", Contact: "555-0456", Code: "12345"},
	{Name: "Mike Johnson", Age: "35", Gender: "Male", Address: "789 Pine Rd, Chicago, IL", Contact: "555-0789", Code: "12345"},
}

var sampleAlerts = []models.Alert{
	{Name: "Emergency Alert 1", Address: "123 Emergency St, City", Contact: "911"},
	{Name: "Emergency Alert 2", Address: "456 Safety Ave, Town", Contact: "555-0001"},
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample users and alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, db, err := connect(ctx)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer client.Disconnect(ctx)
			color.Green("Connected to MongoDB")

			if err := seed(ctx, db); err != nil {
				return err
			}

			color.Green("Sample data added successfully")
			return nil
		},
	}
}

func seed(ctx context.Context, db *mongo.Database) error {
	users := db.Collection("users")
	alerts := db.Collection("alerts")

	fmt.Println("Adding sample users...")
	for _, s := range sampleUsers {
		err := users.FindOne(ctx, bson.M{"name": s.Name}).Err()
		if err == nil {
			color.Yellow("User %s already exists", s.Name)
			continue
		}
		if err != mongo.ErrNoDocuments {
			return fmt.Errorf("lookup %s: %w", s.Name, err)
		}

		now := time.Now()
		user := models.User{
			Name:      s.Name,
			Age:       s.Age,
			Gender:    s.Gender,
			Address:   s.Address,
			Contact:   s.Contact,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := user.SetCode(s.Code); err != nil {
			return fmt.Errorf("hash code for %s: %w", s.Name, err)
		}
		if _, err := users.InsertOne(ctx, user); err != nil {
			return fmt.Errorf("insert %s: %w", s.Name, err)
		}
		color.Green("Added user: %s", s.Name)
	}

	fmt.Println("Adding sample alerts...")
	for _, a := range sampleAlerts {
		a.Timestamp = time.Now()
		if _, err := alerts.InsertOne(ctx, a); err != nil {
			return fmt.Errorf("insert alert %s: %w", a.Name, err)
		}
		color.Green("Added alert: %s", a.Name)
	}

	userCount, err := users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	alertCount, err := alerts.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}

	fmt.Println()
	color.Cyan("Final Database Status:")
	fmt.Printf("Total Users: %d\n", userCount)
	fmt.Printf("Total Alerts: %d\n", alertCount)

	return nil
}
