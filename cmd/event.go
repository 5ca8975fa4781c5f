package cmd

import (
	"context"
	"fmt"
	"slices"

	"github.com/frahmantamala/tunjangan-pas/internal/core/events"
	"github.com/frahmantamala/tunjangan-pas/pkg/logger"
	"github.com/spf13/cobra"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Event management commands",
	Long:  `Publish record events to the in-process bus and inspect their effect on the notification feed`,
}

var publishEventCmd = &cobra.Command{
	Use:   "publish [record.created|record.updated|record.deleted]",
	Short: "Publish a record event",
	Long:  `Publish a record event through the bus so its subscribers (the notification feed) react to it`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return publishRecordEvent(ctx, args[0])
	},
}

var (
	eventScreen string
	eventID     string
	eventLabel  string
	eventActor  string
)

func publishRecordEvent(ctx context.Context, eventType string) error {
	if !slices.Contains(events.RecordEventTypes, eventType) {
		return fmt.Errorf("unknown event type %q, expected one of %v", eventType, events.RecordEventTypes)
	}

	cfg, err := setup()
	if err != nil {
		return err
	}
	lg := logger.L()

	app, err := newApp(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer app.Close()

	event := events.NewRecordEvent(eventType, eventScreen, eventID, eventLabel, eventActor)
	lg.Info("publishing record event", "event_type", eventType, "event_id", event.EventID(), "screen", eventScreen)
	if err := app.Bus.PublishSync(ctx, event); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	unread, err := app.Feed.UnreadCount(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("event %s delivered; unread notifications: %d\n", event.EventID(), unread)
	return nil
}

func init() {
	publishEventCmd.Flags().StringVar(&eventScreen, "screen", "pegawai", "screen the record belongs to")
	publishEventCmd.Flags().StringVar(&eventID, "id", "manual", "record id")
	publishEventCmd.Flags().StringVar(&eventLabel, "label", "Data uji", "record label shown in the notification")
	publishEventCmd.Flags().StringVar(&eventActor, "actor", "cli", "who performed the change")

	eventCmd.AddCommand(publishEventCmd)

	rootCmd.AddCommand(eventCmd)
}
