package cli

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ealert.io/config"
)

// NewRootCmd builds the maintenance CLI. Each subcommand opens its own
// connection, does its work, and disconnects; none of them go through the
// HTTP handlers.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ealertctl",
		Short:         "Maintenance tooling for the emergency-alert service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSeedCmd())
	root.AddCommand(newInfoCmd())

	return root
}

func connect(ctx context.Context) (*mongo.Client, *mongo.Database, error) {
	godotenv.Load()
	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, nil, err
	}

	return client, client.Database(cfg.MongoDB), nil
}
