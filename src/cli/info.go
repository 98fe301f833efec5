package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ealert.io/src/models"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print a database status report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, db, err := connect(ctx)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer client.Disconnect(ctx)
			color.Green("Connected to MongoDB")

			return printInfo(ctx, db)
		},
	}
}

func header(title string) {
	fmt.Println()
	color.Cyan(title)
	fmt.Println(strings.Repeat("=", 50))
}

func printInfo(ctx context.Context, db *mongo.Database) error {
	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return err
	}

	header("DATABASE INFORMATION")
	fmt.Printf("Database Name: %s\n", db.Name())
	fmt.Printf("Collections: %d\n", len(names))

	header("COLLECTION DETAILS")
	for _, name := range names {
		count, err := db.Collection(name).CountDocuments(ctx, bson.M{})
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d documents\n", name, count)
	}

	users := db.Collection("users")
	alerts := db.Collection("alerts")

	userCount, err := users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	maleUsers, err := users.CountDocuments(ctx, bson.M{"gender": "Male"})
	if err != nil {
		return err
	}
	femaleUsers, err := users.CountDocuments(ctx, bson.M{"gender": "Female"})
	if err != nil {
		return err
	}

	header("USER STATISTICS")
	fmt.Printf("Total Users: %d\n", userCount)
	fmt.Printf("Male Users: %d\n", maleUsers)
	fmt.Printf("Female Users: %d\n", femaleUsers)

	header("RECENT USERS")
	recentUsers, err := findUsers(ctx, users)
	if err != nil {
		return err
	}
	for i, u := range recentUsers {
		fmt.Printf("%d. %s (%s, %s) - %s - %s\n",
			i+1, u.Name, u.Age, u.Gender, u.Contact, u.CreatedAt.Format("2006-01-02"))
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	alertCount, err := alerts.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	todayAlerts, err := alerts.CountDocuments(ctx, bson.M{"timestamp": bson.M{"$gte": today}})
	if err != nil {
		return err
	}

	header("ALERT STATISTICS")
	fmt.Printf("Total Alerts: %d\n", alertCount)
	fmt.Printf("Today's Alerts: %d\n", todayAlerts)

	header("RECENT ALERTS")
	recentAlerts, err := findAlerts(ctx, alerts)
	if err != nil {
		return err
	}
	for i, a := range recentAlerts {
		fmt.Printf("%d. %s at %s (%s) - %s\n",
			i+1, a.Name, a.Address, a.Contact, a.Timestamp.Format("2006-01-02 15:04:05"))
	}

	fmt.Println()
	color.Green("Database information retrieved successfully")
	return nil
}

func findUsers(ctx context.Context, users *mongo.Collection) ([]models.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(5).
		SetProjection(bson.M{"code_hash": 0})

	cursor, err := users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.User
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func findAlerts(ctx context.Context, alerts *mongo.Collection) ([]models.Alert, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(5)

	cursor, err := alerts.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Alert
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
