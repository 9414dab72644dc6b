// Package analytics arma el resumen del día para la pantalla principal del
// dueño: ventas, mermas, stock bajo, sugerencias de compra y asistencia.
package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafe-pos/internal/application/dto"
	"github.com/tu-usuario/cafe-pos/internal/application/stock"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
)

// DashboardUseCase genera las estadísticas del día en curso.
//
// Solo lectura: consulta los repositorios y agrega en memoria; nunca muta
// stock ni libros de ventas.
type DashboardUseCase struct {
	sales     repository.SaleRepository
	wastes    repository.WasteRepository
	materials repository.MaterialRepository
	users     repository.UserRepository
	presence  repository.AttendanceRepository
	now       func() time.Time // inyectable en tests
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	sales repository.SaleRepository,
	wastes repository.WasteRepository,
	materials repository.MaterialRepository,
	users repository.UserRepository,
	presence repository.AttendanceRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		sales:     sales,
		wastes:    wastes,
		materials: materials,
		users:     users,
		presence:  presence,
		now:       time.Now,
	}
}

// GetStats construye el DashboardStatsDTO del día de hoy.
//
// Cuatro consultas en paralelo:
//  1. ListByDate(hoy) de ventas      → TodaySales / TodayProfit / TodayOrders
//  2. ListByDate(hoy) de mermas      → TodayWaste
//  3. List de materiales             → LowStockItems + PurchaseSuggestions
//  4. usuarios + asistencia de hoy   → PresentEmployees / TotalEmployees
func (uc *DashboardUseCase) GetStats() (*dto.DashboardStatsDTO, error) {
	today := uc.now().Format(entity.DateLayout)

	type salesResult struct {
		list []*entity.Sale
		err  error
	}
	type wastesResult struct {
		list []*entity.Waste
		err  error
	}
	type materialsResult struct {
		list []*entity.RawMaterial
		err  error
	}
	type presenceResult struct {
		users   []*entity.User
		records []*entity.Attendance
		err     error
	}

	salesCh := make(chan salesResult, 1)
	wastesCh := make(chan wastesResult, 1)
	matsCh := make(chan materialsResult, 1)
	presCh := make(chan presenceResult, 1)

	go func() {
		list, err := uc.sales.ListByDate(today)
		salesCh <- salesResult{list, err}
	}()
	go func() {
		list, err := uc.wastes.ListByDate(today)
		wastesCh <- wastesResult{list, err}
	}()
	go func() {
		list, err := uc.materials.List()
		matsCh <- materialsResult{list, err}
	}()
	go func() {
		users, err := uc.users.List()
		if err != nil {
			presCh <- presenceResult{err: err}
			return
		}
		records, err := uc.presence.ListByDate(today)
		presCh <- presenceResult{users, records, err}
	}()

	salesRes := <-salesCh
	wastesRes := <-wastesCh
	matsRes := <-matsCh
	presRes := <-presCh

	if salesRes.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", salesRes.err)
	}
	if wastesRes.err != nil {
		return nil, fmt.Errorf("dashboard: mermas de hoy: %w", wastesRes.err)
	}
	if matsRes.err != nil {
		return nil, fmt.Errorf("dashboard: materiales: %w", matsRes.err)
	}
	if presRes.err != nil {
		return nil, fmt.Errorf("dashboard: asistencia: %w", presRes.err)
	}

	// ── Ventas del día ─────────────────────────────────────────────────────────
	todaySales := decimal.Zero
	todayProfit := decimal.Zero
	for _, s := range salesRes.list {
		todaySales = todaySales.Add(s.Subtotal)
		todayProfit = todayProfit.Add(s.TotalProfit)
	}

	// ── Mermas del día ─────────────────────────────────────────────────────────
	todayWaste := decimal.Zero
	for _, w := range wastesRes.list {
		todayWaste = todayWaste.Add(w.TotalLoss)
	}

	// ── Stock bajo y compras sugeridas ─────────────────────────────────────────
	lowStock := make([]dto.MaterialResponse, 0)
	for _, m := range matsRes.list {
		if m.CurrentStock.LessThan(m.MinStock) {
			lowStock = append(lowStock, dto.ToMaterialResponse(m))
		}
	}
	suggestions := stock.Suggest(matsRes.list)

	// ── Asistencia de hoy ──────────────────────────────────────────────────────
	// Cuenta como presente cualquier registro del día, llegue tarde o no.
	totalEmployees := 0
	for _, u := range presRes.users {
		if u.IsActive {
			totalEmployees++
		}
	}

	return &dto.DashboardStatsDTO{
		TodaySales:          todaySales,
		TodayProfit:         todayProfit,
		TodayOrders:         len(salesRes.list),
		TodayWaste:          todayWaste,
		LowStockItems:       lowStock,
		PurchaseSuggestions: suggestions,
		PresentEmployees:    len(presRes.records),
		TotalEmployees:      totalEmployees,
	}, nil
}
