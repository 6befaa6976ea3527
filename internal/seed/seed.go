// Package seed cria o tenant inicial, plataformas e produtos de
// exemplo. Executa uma vez; chamadas seguintes são no-ops.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"galaxia/internal/store"
	"galaxia/internal/store/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Fixture is the YAML shape of the initial dataset.
type Fixture struct {
	Tenant struct {
		Name string `yaml:"name"`
		Plan string `yaml:"plan"`
	} `yaml:"tenant"`
	Platforms []struct {
		Name              string  `yaml:"name"`
		Type              string  `yaml:"type"`
		DefaultFeePercent float64 `yaml:"default_fee_percent"`
	} `yaml:"platforms"`
	Products []struct {
		Name          string  `yaml:"name"`
		SalePrice     float64 `yaml:"sale_price"`
		EstimatedCost float64 `yaml:"estimated_cost"`
	} `yaml:"products"`
}

// Stats counts what the seed created.
type Stats struct {
	TenantID  string `json:"tenantId"`
	Tenant    string `json:"tenant"`
	Platforms int    `json:"platforms"`
	Products  int    `json:"products"`
}

// Run executes the initial setup. The second return is true when the
// system was already configured and nothing was written.
func Run(ctx context.Context, st store.Store, fixturePath string) (Stats, bool, error) {
	count, err := st.Tenants().Count(ctx)
	if err != nil {
		return Stats{}, false, err
	}
	if count > 0 {
		existing, err := st.Tenants().FirstActive(ctx)
		if err != nil {
			return Stats{}, true, nil
		}
		return Stats{TenantID: existing.ID, Tenant: existing.Name}, true, nil
	}

	fixture, err := loadFixture(fixturePath)
	if err != nil {
		return Stats{}, false, err
	}

	tenant := &model.TenantModel{
		ID:     uuid.NewString(),
		Name:   fixture.Tenant.Name,
		Plan:   fixture.Tenant.Plan,
		Active: true,
	}
	if err := st.Tenants().Create(ctx, tenant); err != nil {
		return Stats{}, false, err
	}

	stats := Stats{TenantID: tenant.ID, Tenant: tenant.Name}
	for _, p := range fixture.Platforms {
		platform := &model.PlatformModel{
			ID:                uuid.NewString(),
			TenantID:          tenant.ID,
			Name:              p.Name,
			Type:              p.Type,
			DefaultFeePercent: decimal.NewFromFloat(p.DefaultFeePercent),
			Active:            true,
		}
		if err := st.Platforms().Create(ctx, platform); err != nil {
			return stats, false, err
		}
		stats.Platforms++
	}
	for _, p := range fixture.Products {
		product := &model.ProductModel{
			ID:            uuid.NewString(),
			TenantID:      tenant.ID,
			Name:          p.Name,
			SalePrice:     decimal.NewFromFloat(p.SalePrice),
			EstimatedCost: decimal.NewFromFloat(p.EstimatedCost),
			Active:        true,
		}
		if err := st.Products().Create(ctx, product); err != nil {
			return stats, false, err
		}
		stats.Products++
	}
	return stats, false, nil
}

// SetupStatus describes whether the system has been seeded.
type SetupStatus struct {
	Configured bool   `json:"configured"`
	Tenant     string `json:"tenant,omitempty"`
	Platforms  int64  `json:"platforms"`
	Products   int64  `json:"products"`
	Orders     int64  `json:"orders"`
}

// Status reports the current setup state for the setup page.
func Status(ctx context.Context, st store.Store) (SetupStatus, error) {
	tenant, err := st.Tenants().FirstActive(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SetupStatus{}, nil
		}
		return SetupStatus{}, err
	}
	status := SetupStatus{Configured: true, Tenant: tenant.Name}
	if status.Platforms, err = st.Platforms().Count(ctx, tenant.ID); err != nil {
		return status, err
	}
	if status.Products, err = st.Products().Count(ctx, tenant.ID); err != nil {
		return status, err
	}
	if status.Orders, err = st.Orders().Count(ctx, tenant.ID); err != nil {
		return status, err
	}
	return status, nil
}

func loadFixture(path string) (Fixture, error) {
	fixture := defaultFixture()
	if strings.TrimSpace(path) == "" {
		return fixture, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fixture, nil
		}
		return fixture, err
	}
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return fixture, fmt.Errorf("parsing seed fixture failed (%s): %w", path, err)
	}
	if strings.TrimSpace(fixture.Tenant.Name) == "" {
		fixture.Tenant.Name = "Meu Restaurante"
	}
	if strings.TrimSpace(fixture.Tenant.Plan) == "" {
		fixture.Tenant.Plan = "FREE"
	}
	return fixture, nil
}

// defaultFixture mirrors the sample dataset shipped in configs/seed.yaml.
func defaultFixture() Fixture {
	var f Fixture
	f.Tenant.Name = "Meu Restaurante"
	f.Tenant.Plan = "FREE"
	f.Platforms = []struct {
		Name              string  `yaml:"name"`
		Type              string  `yaml:"type"`
		DefaultFeePercent float64 `yaml:"default_fee_percent"`
	}{
		{Name: "iFood", Type: model.PlatformTypeDelivery, DefaultFeePercent: 0.23},
		{Name: "Rappi", Type: model.PlatformTypeDelivery, DefaultFeePercent: 0.20},
		{Name: "Balcão / WhatsApp", Type: model.PlatformTypeManual, DefaultFeePercent: 0},
	}
	f.Products = []struct {
		Name          string  `yaml:"name"`
		SalePrice     float64 `yaml:"sale_price"`
		EstimatedCost float64 `yaml:"estimated_cost"`
	}{
		{Name: "Hambúrguer Clássico", SalePrice: 28.90, EstimatedCost: 12.00},
		{Name: "X-Bacon Especial", SalePrice: 34.90, EstimatedCost: 15.00},
		{Name: "Batata Frita (Porção)", SalePrice: 18.90, EstimatedCost: 5.00},
		{Name: "Refrigerante Lata", SalePrice: 6.90, EstimatedCost: 3.00},
		{Name: "Combo Família", SalePrice: 89.90, EstimatedCost: 35.00},
	}
	return f
}
