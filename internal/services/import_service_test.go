package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homevest_backend/internal/database"
	"homevest_backend/internal/demo"
	"homevest_backend/internal/repositories"
)

func demoPropertyRepo() repositories.PropertyRepository {
	health := database.NewHealthChecker(nil, 0)
	return repositories.NewPropertyRepository(nil, health, demo.NewStore())
}

func TestImportPropertiesFromCSV(t *testing.T) {
	repo := demoPropertyRepo()
	svc := NewImportService(repo)

	csvData := strings.Join([]string{
		"Title,Address,City,State,Zip,Price,Beds,Baths,Sqft,Property Type,Featured",
		"Starter Home,10 First St,Atlanta,GA,30301,185000,2,1,900,single_family,yes",
		"Duplex Deal,22 Second Ave,Decatur,GA,30030,\"310,000\",4,2,2100,multi_family,",
		",30 Third Rd,Atlanta,GA,30302,100000,1,1,500,condo,",
		"Bad Price,40 Fourth Blvd,Atlanta,GA,30303,free,1,1,500,condo,",
	}, "\n")

	result, err := svc.ImportProperties(context.Background(), "listings.csv", strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "row 4")
	assert.Contains(t, result.Errors[1], "row 5")

	listed, err := repo.List(context.Background(), repositories.PropertyFilter{})
	require.NoError(t, err)

	var found bool
	for _, p := range listed {
		if p.Title == "Starter Home" {
			found = true
			assert.Equal(t, 185000.0, p.Price)
			assert.True(t, p.IsFeatured)
			assert.Equal(t, "starter-home", p.Slug)
		}
	}
	assert.True(t, found, "imported listing should be visible")
}

func TestImportRejectsUnknownExtension(t *testing.T) {
	svc := NewImportService(demoPropertyRepo())

	_, err := svc.ImportProperties(context.Background(), "listings.pdf", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestImportRequiresHeaderColumns(t *testing.T) {
	svc := NewImportService(demoPropertyRepo())

	csvData := "Name,Location\nFoo,Bar\n"
	_, err := svc.ImportProperties(context.Background(), "bad.csv", strings.NewReader(csvData))
	assert.Error(t, err)
}

func TestImportRejectsEmptyFile(t *testing.T) {
	svc := NewImportService(demoPropertyRepo())

	_, err := svc.ImportProperties(context.Background(), "empty.csv", strings.NewReader("Title,Address\n"))
	assert.Error(t, err)
}
