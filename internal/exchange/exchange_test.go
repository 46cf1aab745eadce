package exchange_test

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"tracker/internal/exchange"
	"tracker/pkg/domain"
	"tracker/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)

	return d
}

const importCSV = `Project Name,Type,Module Name,Parent Module,P_D0,P_D1,P_D2,P_D3,P_D4,D0_Act,D0_ECN,D1_Act,D1_ECN,D2_Act,D2_ECN,D3_Act,D3_ECN,D4_Act,D4_ECN
Gearbox NG,Major,Housing,,2026-01-15,2026-04-01,,,,2026-01-10,ECN-7,,,,,,,,
Gearbox NG,Major,Shaft,,2026-01-15,,,,,2026-01-20,,,,,,,,,
Gearbox NG,Major,Seal,Housing,,,,,,2026-01-05,,,,,,,,,
Axle Facelift,Minor,,,2026-02-01,,,,,,,,,,,,,,
`

func TestParseCSV_GroupsByProject(t *testing.T) {
	batch, err := exchange.ParseCSV(strings.NewReader(importCSV))
	require.NoError(t, err)
	require.Len(t, batch, 2)

	gearbox := batch[0]
	require.Equal(t, "Gearbox NG", gearbox.Name)
	require.Equal(t, domain.ProjectTypeMajor, gearbox.Type)
	require.Equal(t, date(t, "2026-01-15"), gearbox.Plans[domain.GatewayD0])
	require.Equal(t, date(t, "2026-04-01"), gearbox.Plans[domain.GatewayD1])
	require.Len(t, gearbox.Modules, 3)

	housing := gearbox.Modules[0]
	require.Equal(t, "Housing", housing.Name)
	require.Empty(t, housing.Parent)
	require.Equal(t, date(t, "2026-01-10"), housing.Actuals[domain.GatewayD0])
	require.Equal(t, "ECN-7", housing.ECNs[domain.GatewayD0])

	seal := gearbox.Modules[2]
	require.Equal(t, "Housing", seal.Parent)

	axle := batch[1]
	require.Equal(t, domain.ProjectTypeMinor, axle.Type)
	require.Empty(t, axle.Modules)
}

func TestParseCSV_BlankTypeStaysEmpty(t *testing.T) {
	csv := "Project Name,Type,Module Name\nUnnamed Program,,Core\n"
	batch, err := exchange.ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, batch, 1)
	// the import decides what blank types become; parsing keeps them empty
	require.Empty(t, batch[0].Type)
}

func TestParseCSV_Errors(t *testing.T) {
	_, err := exchange.ParseCSV(strings.NewReader(""))
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = exchange.ParseCSV(strings.NewReader("Nope,Columns\nx,y\n"))
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	bad := "Project Name,Module Name,P_D0\nP1,M1,31-01-2026\n"
	_, err = exchange.ParseCSV(strings.NewReader(bad))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Contains(t, err.Error(), "row 2")

	missingName := "Project Name,Module Name\n,M1\n"
	_, err = exchange.ParseCSV(strings.NewReader(missingName))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func exportProject(t *testing.T) domain.Project {
	t.Helper()

	housing := domain.Module{
		ID:       domain.ModuleID(uuid.New()),
		Name:     "Housing",
		Gateways: domain.NewGatewayBoard(),
	}
	housing.SubModules = []domain.Module{{
		ID:       domain.ModuleID(uuid.New()),
		Name:     "Seal",
		Gateways: domain.NewGatewayBoard(),
	}}
	housing.SubModules[0].Gateways.SetActual(domain.GatewayD0, date(t, "2026-01-05"))
	housing.SubModules[0].Gateways.SetECN(domain.GatewayD0, "ECN-9")
	// the parent carries its derived actual and its own change notice
	housing.Gateways.SetActual(domain.GatewayD0, date(t, "2026-01-05"))
	housing.Gateways.SetECN(domain.GatewayD1, "ECN-4")

	shaft := domain.Module{
		ID:       domain.ModuleID(uuid.New()),
		Name:     "Shaft",
		Gateways: domain.NewGatewayBoard(),
	}
	shaft.Gateways.SetActual(domain.GatewayD0, date(t, "2026-01-20"))

	project := domain.Project{
		ID:       domain.ProjectID(uuid.New()),
		Name:     "Gearbox NG",
		Type:     domain.ProjectTypeMajor,
		Gateways: domain.NewGatewayBoard(),
		Modules:  []domain.Module{housing, shaft},
	}
	project.Gateways.SetPlan(domain.GatewayD0, date(t, "2026-01-15"))

	return project
}

func TestWriteCSV_RoundTrips(t *testing.T) {
	project := exportProject(t)

	var buf bytes.Buffer
	require.NoError(t, exchange.WriteCSV(&buf, []domain.Project{project}))

	batch, err := exchange.ParseCSV(&buf)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	require.Equal(t, "Gearbox NG", batch[0].Name)
	require.Equal(t, date(t, "2026-01-15"), batch[0].Plans[domain.GatewayD0])

	// the parent gets its own row ahead of its sub-modules
	require.Len(t, batch[0].Modules, 3)
	housing := batch[0].Modules[0]
	require.Equal(t, "Housing", housing.Name)
	require.Empty(t, housing.Parent)
	require.Equal(t, date(t, "2026-01-05"), housing.Actuals[domain.GatewayD0])
	require.Equal(t, "ECN-4", housing.ECNs[domain.GatewayD1])

	seal := batch[0].Modules[1]
	require.Equal(t, "Seal", seal.Name)
	require.Equal(t, "Housing", seal.Parent)
	require.Equal(t, "ECN-9", seal.ECNs[domain.GatewayD0])
	require.Equal(t, "Shaft", batch[0].Modules[2].Name)
}

func TestFlatten_BareProjectGetsOneRow(t *testing.T) {
	project := domain.Project{
		ID:       domain.ProjectID(uuid.New()),
		Name:     "Empty",
		Type:     domain.ProjectTypeCarryover,
		Gateways: domain.NewGatewayBoard(),
	}

	records := exchange.Flatten([]domain.Project{project})
	require.Len(t, records, 1)
	require.Equal(t, "Empty", records[0][0])
	require.Empty(t, records[0][2])
}

func TestWriteTemplate_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, exchange.WriteTemplate(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	require.True(t, strings.HasPrefix(lines[0], "Project Name,Type,Module Name,Parent Module,P_D0"))
}

func TestWriteExcel_ProducesReadableWorkbook(t *testing.T) {
	project := exportProject(t)

	var buf bytes.Buffer
	require.NoError(t, exchange.WriteExcel(&buf, []domain.Project{project}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Status Report")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.Equal(t, "Project Name", rows[0][0])
	require.Equal(t, "Gearbox NG", rows[1][0])
	require.Equal(t, "Housing", rows[1][2])
	require.Equal(t, "Seal", rows[2][2])
}
