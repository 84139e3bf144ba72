package editor

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/hero-sheet/internal/entities/sheet"
)

// Event types published on the bus
const (
	EventSheetOpened      = "sheet.opened"
	EventSheetClosed      = "sheet.closed"
	EventFieldUpdated     = "sheet.field_updated"
	EventInputReverted    = "sheet.input_reverted"
	EventConditionChanged = "sheet.condition_changed"
	EventSubtypeAdded     = "sheet.subtype_added"
	EventSubtypeRemoved   = "sheet.subtype_removed"
	EventThemeChanged     = "sheet.theme_changed"
)

// Event context keys
const (
	ContextKeyField   = "field"
	ContextKeyDisplay = "display"
	ContextKeyActive  = "active"
	ContextKeyIndex   = "index"
	ContextKeyTheme   = "theme"
)

// publish notifies subscribers. A failing subscriber does not undo the change.
func (o *orchestrator) publish(ctx context.Context, eventType string, doc *sheet.Document, data map[string]any) {
	event := events.NewGameEvent(eventType, doc, nil)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		o.logger.WarnContext(ctx, "event subscriber failed",
			"event", eventType,
			"sheet_id", doc.ID,
			"error", err)
	}
}
