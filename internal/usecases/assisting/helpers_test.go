package assisting

import (
	"fmt"

	"github.com/vfg2006/creator-assistant/internal/dataset"
	"github.com/vfg2006/creator-assistant/internal/domain"
)

func sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func sampleDataset() *domain.CreatorDataset {
	return dataset.Sample()
}

func product(name, category string, revenue, conversion float64) domain.Product {
	return domain.Product{
		Name:           name,
		Category:       category,
		Revenue:        revenue,
		ConversionRate: conversion,
	}
}
