package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

func validInput() domain.BikeInput {
	return domain.BikeInput{
		Name:  "  Commuter  ",
		Brand: "Trek",
		Model: "FX 3",
		Year:  2024,
		Type:  domain.Hybrid,
	}
}

func TestCreateBike(t *testing.T) {
	f := loadedFixture(t)

	bike, err := f.bikes.CreateBike(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, bike.ID)
	assert.Equal(t, "Commuter", bike.Name)
	assert.Equal(t, "700c", bike.WheelSize)
	assert.Equal(t, now, bike.CreatedAt)
	assert.Len(t, bike.MaintenanceItems, 4)
	assert.Equal(t, bike.ID+"-1", bike.MaintenanceItems[0].ID)
	assert.NotNil(t, bike.Links)
	assert.Empty(t, bike.Links)
	require.NotNil(t, bike.Configuration)
	assert.False(t, bike.Configuration.HasShock)
	assert.Equal(t, 180.0, bike.Configuration.RiderWeight)

	snap := f.fleet.Snapshot()
	assert.Len(t, snap.Bikes, 3)
	assert.Equal(t, bike.ID, snap.CurrentBikeID)
}

func TestCreateBike_MountainDefaults(t *testing.T) {
	f := loadedFixture(t)
	input := validInput()
	input.Type = domain.Mountain

	bike, err := f.bikes.CreateBike(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, `29"`, bike.WheelSize)
	assert.True(t, bike.Configuration.HasShock)
	assert.Len(t, bike.MaintenanceItems, 22)
}

func TestCreateBike_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input func(*domain.BikeInput)
	}{
		{"blank name", func(in *domain.BikeInput) { in.Name = "   " }},
		{"missing brand", func(in *domain.BikeInput) { in.Brand = "" }},
		{"unknown type", func(in *domain.BikeInput) { in.Type = "bmx" }},
		{"year too old", func(in *domain.BikeInput) { in.Year = 1850 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := loadedFixture(t)
			input := validInput()
			tt.input(&input)

			_, err := f.bikes.CreateBike(context.Background(), input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Len(t, f.fleet.Snapshot().Bikes, 2)
		})
	}
}

func TestGetAndListBikes(t *testing.T) {
	f := loadedFixture(t)

	bike, err := f.bikes.GetBike(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Gravel Explorer", bike.Name)

	_, err = f.bikes.GetBike(context.Background(), "42")
	assert.ErrorIs(t, err, domain.ErrBikeNotFound)

	bikes, err := f.bikes.ListBikes(context.Background())
	require.NoError(t, err)
	assert.Len(t, bikes, 2)

	// Callers get copies.
	bikes[0].Name = "changed"
	bike, err = f.bikes.GetBike(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Trail Ripper", bike.Name)
}

func TestUpdateBike_KeepsItems(t *testing.T) {
	f := loadedFixture(t)
	before, err := f.bikes.GetBike(context.Background(), "1")
	require.NoError(t, err)

	input := validInput()
	input.WheelSize = `27.5"`
	updated, err := f.bikes.UpdateBike(context.Background(), "1", input)
	require.NoError(t, err)

	assert.Equal(t, "Commuter", updated.Name)
	assert.Equal(t, domain.Hybrid, updated.Type)
	assert.Equal(t, `27.5"`, updated.WheelSize)
	assert.Equal(t, before.MaintenanceItems, updated.MaintenanceItems)
	assert.Equal(t, before.Links, updated.Links)

	_, err = f.bikes.UpdateBike(context.Background(), "42", validInput())
	assert.ErrorIs(t, err, domain.ErrBikeNotFound)
}

func TestDeleteBike_ResetsCurrent(t *testing.T) {
	f := loadedFixture(t)

	require.NoError(t, f.bikes.DeleteBike(context.Background(), "1"))
	snap := f.fleet.Snapshot()
	require.Len(t, snap.Bikes, 1)
	assert.Equal(t, "2", snap.CurrentBikeID)

	require.NoError(t, f.bikes.DeleteBike(context.Background(), "2"))
	snap = f.fleet.Snapshot()
	assert.Empty(t, snap.Bikes)
	assert.Equal(t, "", snap.CurrentBikeID)

	err := f.bikes.DeleteBike(context.Background(), "2")
	assert.ErrorIs(t, err, domain.ErrBikeNotFound)
}

func TestUpdateConfiguration(t *testing.T) {
	f := loadedFixture(t)

	cfg, err := f.bikes.UpdateConfiguration(context.Background(), "2", domain.Configuration{
		ForkPressure:  60,
		ShockPressure: 200,
		ShockClicks:   4,
		HasShock:      false,
		FrontTirePSI:  40,
		RearTirePSI:   42,
		RiderWeight:   170,
	})
	require.NoError(t, err)
	assert.Zero(t, cfg.ShockPressure)
	assert.Zero(t, cfg.ShockClicks)
	assert.Equal(t, now, cfg.LastUpdated)

	stored, err := f.bikes.GetConfiguration(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, 60.0, stored.ForkPressure)
	assert.Zero(t, stored.ShockPressure)
	assert.True(t, stored.Has(domain.KeyRiderWeight))
}

func TestUpdateConfiguration_Errors(t *testing.T) {
	f := loadedFixture(t)

	_, err := f.bikes.UpdateConfiguration(context.Background(), "1", domain.Configuration{ForkPressure: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.bikes.UpdateConfiguration(context.Background(), "42", domain.Configuration{})
	assert.ErrorIs(t, err, domain.ErrBikeNotFound)

	_, err = f.bikes.GetConfiguration(context.Background(), "42")
	assert.ErrorIs(t, err, domain.ErrBikeNotFound)
}

func TestLinks(t *testing.T) {
	f := loadedFixture(t)

	link, err := f.bikes.AddLink(context.Background(), "1", domain.DocumentationLink{
		Title: " Fork manual ",
		URL:   "https://example.com/fork.pdf",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, link.ID)
	assert.Equal(t, "Fork manual", link.Title)

	links, err := f.bikes.ListLinks(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, link.ID, links[2].ID)

	require.NoError(t, f.bikes.RemoveLink(context.Background(), "1", link.ID))
	links, err = f.bikes.ListLinks(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, links, 2)

	err = f.bikes.RemoveLink(context.Background(), "1", link.ID)
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
}

func TestAddLink_Validation(t *testing.T) {
	tests := []struct {
		name string
		link domain.DocumentationLink
		want error
	}{
		{"missing title", domain.DocumentationLink{Title: "  ", URL: "https://example.com"}, domain.ErrInvalidInput},
		{"missing url", domain.DocumentationLink{Title: "Manual"}, domain.ErrInvalidInput},
		{"not a url", domain.DocumentationLink{Title: "Manual", URL: "not a url"}, domain.ErrInvalidInput},
		{"relative url", domain.DocumentationLink{Title: "Manual", URL: "/docs/manual"}, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := loadedFixture(t)

			_, err := f.bikes.AddLink(context.Background(), "1", tt.link)
			assert.ErrorIs(t, err, tt.want)

			links, err := f.bikes.ListLinks(context.Background(), "1")
			require.NoError(t, err)
			assert.Len(t, links, 2)
		})
	}

	f := loadedFixture(t)
	_, err := f.bikes.AddLink(context.Background(), "42", domain.DocumentationLink{Title: "Manual", URL: "https://example.com"})
	assert.ErrorIs(t, err, domain.ErrBikeNotFound)
}
