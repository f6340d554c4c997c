package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sghaida/designpatterns/document"
	"github.com/sghaida/designpatterns/entity"
	"github.com/sghaida/designpatterns/internal/config"
	"github.com/sghaida/designpatterns/internal/logger"
	"github.com/sghaida/designpatterns/widget"
)

// sampleCar seeds the document demo when no file is given.
func sampleCar() map[string]any {
	return map[string]any{
		entity.CarModelKey: "Tesla Model S",
		entity.CarPriceKey: 79900,
	}
}

// runDocumentDemo loads a car, adds a property dynamically, updates the model
// through the named accessor and prints the resulting properties.
func runDocumentDemo(w io.Writer, cfg config.Config) error {
	car, err := loadCar(cfg.Document)
	if err != nil {
		return err
	}
	logger.Info("running document demo", "source", sourceName(cfg.Document), "properties", car.Len())

	fmt.Fprintln(w, headerStyle.Render("Abstract Document"))
	fmt.Fprintf(w, "model: %s\n", car.Model())

	car.Put(entity.CarColorKey, "red")
	car.SetModel("Tesla Model 3")
	fmt.Fprintf(w, "model after update: %s\n", car.Model())

	for key := range car.Keys() {
		value, _ := car.Get(key)
		fmt.Fprintf(w, "  %s = %v\n", key, value)
	}
	return nil
}

// runFactoryDemo picks the widget family for cfg.Platform and paints an
// application built from it. An unknown platform is returned unchanged.
func runFactoryDemo(w io.Writer, cfg config.Config) error {
	factory, err := widget.NewFactory(cfg.Platform)
	if err != nil {
		logger.Error("cannot select widget family", "platform", cfg.Platform, "error", err)
		return err
	}
	logger.Info("running factory demo", "platform", cfg.Platform)

	fmt.Fprintln(w, headerStyle.Render("Abstract Factory"))
	return widget.NewApplication(factory).Paint(w)
}

// loadCar returns the sample car for an empty path, otherwise decodes the
// file by extension (.json, .yaml, .yml).
func loadCar(path string) (*entity.Car, error) {
	if path == "" {
		return entity.NewCar(sampleCar()), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc *document.Base
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		doc, err = document.FromJSON(data)
	case ".yaml", ".yml":
		doc, err = document.FromYAML(data)
	default:
		return nil, fmt.Errorf("unsupported document file extension %q (want .json, .yaml or .yml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return entity.CarFromDocument(doc), nil
}

func sourceName(path string) string {
	if path == "" {
		return "built-in sample"
	}
	return path
}
