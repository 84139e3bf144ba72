package main

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/hero-sheet/internal/config"
	"github.com/KirkDiggler/hero-sheet/internal/engine"
	"github.com/KirkDiggler/hero-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/hero-sheet/internal/errors"
	"github.com/KirkDiggler/hero-sheet/internal/locale"
	"github.com/KirkDiggler/hero-sheet/internal/orchestrators/editor"
	"github.com/KirkDiggler/hero-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/hero-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/hero-sheet/internal/repositories/sheets"
)

func newCodec(cfg *config.Config) (locale.Codec, error) {
	tag, err := cfg.Language()
	if err != nil {
		return nil, err
	}

	return locale.New(tag)
}

// newEditor wires the editor with in-memory storage and the toolkit dice and event bus
func newEditor(cfg *config.Config, logger *slog.Logger) (editor.Service, error) {
	codec, err := newCodec(cfg)
	if err != nil {
		return nil, err
	}

	catalog, err := sheet.DefaultCatalog()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	eng, err := engine.New(&engine.Config{DiceRoller: dice.DefaultRoller})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	return editor.NewOrchestrator(&editor.Config{
		SheetRepo:   sheets.NewInMemory(),
		Engine:      eng,
		Codec:       codec,
		EventBus:    events.NewBus(),
		Catalog:     catalog,
		IDGenerator: idgen.NewUUID("sheet"),
		Clock:       clock.New(),
		Logger:      logger,
		PreferDark:  cfg.PreferDark,
	})
}
