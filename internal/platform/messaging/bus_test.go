package messaging

import (
	"context"
	"testing"
	"time"

	"enablehub/contexts/content-hub/version-lifecycle-service/domain/entities"
	"enablehub/contexts/content-hub/version-lifecycle-service/ports"
)

func TestBusDeliversToSubscriber(t *testing.T) {
	bus := NewBus(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan ports.EventEnvelope, 1)
	if err := bus.Subscribe(ctx, "content-hub.asset-version.events", "test-cg", func(_ context.Context, event ports.EventEnvelope) error {
		received <- event
		return nil
	}); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	sent := ports.EventEnvelope{
		EventID:   "evt-1",
		EventType: "content_hub.version_published",
		EntityID:  "asset-1",
	}
	if err := bus.Publish(ctx, "content-hub.asset-version.events", sent); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case event := <-received:
		if event.EventID != "evt-1" || event.EventType != "content_hub.version_published" {
			t.Fatalf("unexpected event: %+v", event)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for event")
	}
}

func TestBusPublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := NewBus(nil)
	if err := bus.Publish(context.Background(), "unused-topic", ports.EventEnvelope{EventID: "evt-1"}); err != nil {
		t.Fatalf("publish without subscribers should succeed: %v", err)
	}
}

func TestBusNotifierPublishesNotification(t *testing.T) {
	bus := NewBus(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan ports.EventEnvelope, 1)
	if err := bus.Subscribe(ctx, "content-hub.notifications", "test-cg", func(_ context.Context, event ports.EventEnvelope) error {
		received <- event
		return nil
	}); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	notifier := BusNotifier{Bus: bus}
	asset := entities.Asset{AssetID: "asset-1", Title: "Deck", OwnerID: "owner-1"}
	version := entities.AssetVersion{VersionID: "ver-1", AssetID: "asset-1", VersionNumber: 3}
	if err := notifier.NotifyNewVersion(ctx, asset, version); err != nil {
		t.Fatalf("notify failed: %v", err)
	}

	select {
	case event := <-received:
		if event.EntityID != "asset-1" || event.EventType != "content_hub.new_version_notification" {
			t.Fatalf("unexpected event: %+v", event)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for notification")
	}
}
