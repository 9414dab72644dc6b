package failover

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
)

var (
	_ repository.MaterialRepository      = (*MaterialRepo)(nil)
	_ repository.ProductRepository       = (*ProductRepo)(nil)
	_ repository.SaleRepository          = (*SaleRepo)(nil)
	_ repository.WasteRepository         = (*WasteRepo)(nil)
	_ repository.AttendanceRepository    = (*AttendanceRepo)(nil)
	_ repository.UserRepository          = (*UserRepo)(nil)
	_ repository.SettingsRepository      = (*SettingsRepo)(nil)
	_ repository.StockMovementRepository = (*StockMovementRepo)(nil)
)

// MaterialRepo materias primas con failover primario→degradado.
type MaterialRepo struct {
	primary  repository.MaterialRepository
	fallback repository.MaterialRepository
	g        *Guard
}

// NewMaterialRepository construye el adaptador con failover.
func NewMaterialRepository(primary, fallback repository.MaterialRepository, g *Guard) *MaterialRepo {
	return &MaterialRepo{primary: primary, fallback: fallback, g: g}
}

func (r *MaterialRepo) Create(m *entity.RawMaterial) error {
	return callErr(r.g, "material.create",
		func() error { return r.primary.Create(m) },
		func() error { return r.fallback.Create(m) })
}

func (r *MaterialRepo) GetByID(id string) (*entity.RawMaterial, error) {
	return call(r.g, "material.get",
		func() (*entity.RawMaterial, error) { return r.primary.GetByID(id) },
		func() (*entity.RawMaterial, error) { return r.fallback.GetByID(id) })
}

func (r *MaterialRepo) GetForUpdate(id string) (*entity.RawMaterial, error) {
	return call(r.g, "material.get_for_update",
		func() (*entity.RawMaterial, error) { return r.primary.GetForUpdate(id) },
		func() (*entity.RawMaterial, error) { return r.fallback.GetForUpdate(id) })
}

func (r *MaterialRepo) Update(m *entity.RawMaterial) error {
	return callErr(r.g, "material.update",
		func() error { return r.primary.Update(m) },
		func() error { return r.fallback.Update(m) })
}

func (r *MaterialRepo) UpdateStock(id string, quantity decimal.Decimal) error {
	return callErr(r.g, "material.update_stock",
		func() error { return r.primary.UpdateStock(id, quantity) },
		func() error { return r.fallback.UpdateStock(id, quantity) })
}

func (r *MaterialRepo) List() ([]*entity.RawMaterial, error) {
	return call(r.g, "material.list",
		func() ([]*entity.RawMaterial, error) { return r.primary.List() },
		func() ([]*entity.RawMaterial, error) { return r.fallback.List() })
}

func (r *MaterialRepo) Clear() error {
	return callErr(r.g, "material.clear",
		func() error { return r.primary.Clear() },
		func() error { return r.fallback.Clear() })
}

// ProductRepo catálogo con failover primario→degradado.
type ProductRepo struct {
	primary  repository.ProductRepository
	fallback repository.ProductRepository
	g        *Guard
}

// NewProductRepository construye el adaptador con failover.
func NewProductRepository(primary, fallback repository.ProductRepository, g *Guard) *ProductRepo {
	return &ProductRepo{primary: primary, fallback: fallback, g: g}
}

func (r *ProductRepo) Create(p *entity.Product) error {
	return callErr(r.g, "product.create",
		func() error { return r.primary.Create(p) },
		func() error { return r.fallback.Create(p) })
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return call(r.g, "product.get",
		func() (*entity.Product, error) { return r.primary.GetByID(id) },
		func() (*entity.Product, error) { return r.fallback.GetByID(id) })
}

func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return call(r.g, "product.get_by_sku",
		func() (*entity.Product, error) { return r.primary.GetBySKU(sku) },
		func() (*entity.Product, error) { return r.fallback.GetBySKU(sku) })
}

func (r *ProductRepo) Update(p *entity.Product) error {
	return callErr(r.g, "product.update",
		func() error { return r.primary.Update(p) },
		func() error { return r.fallback.Update(p) })
}

func (r *ProductRepo) List() ([]*entity.Product, error) {
	return call(r.g, "product.list",
		func() ([]*entity.Product, error) { return r.primary.List() },
		func() ([]*entity.Product, error) { return r.fallback.List() })
}

func (r *ProductRepo) Clear() error {
	return callErr(r.g, "product.clear",
		func() error { return r.primary.Clear() },
		func() error { return r.fallback.Clear() })
}

// SaleRepo libro de ventas con failover primario→degradado.
type SaleRepo struct {
	primary  repository.SaleRepository
	fallback repository.SaleRepository
	g        *Guard
}

// NewSaleRepository construye el adaptador con failover.
func NewSaleRepository(primary, fallback repository.SaleRepository, g *Guard) *SaleRepo {
	return &SaleRepo{primary: primary, fallback: fallback, g: g}
}

func (r *SaleRepo) Create(s *entity.Sale) error {
	return callErr(r.g, "sale.create",
		func() error { return r.primary.Create(s) },
		func() error { return r.fallback.Create(s) })
}

func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	return call(r.g, "sale.get",
		func() (*entity.Sale, error) { return r.primary.GetByID(id) },
		func() (*entity.Sale, error) { return r.fallback.GetByID(id) })
}

func (r *SaleRepo) List() ([]*entity.Sale, error) {
	return call(r.g, "sale.list",
		func() ([]*entity.Sale, error) { return r.primary.List() },
		func() ([]*entity.Sale, error) { return r.fallback.List() })
}

func (r *SaleRepo) ListByDate(date string) ([]*entity.Sale, error) {
	return call(r.g, "sale.list_by_date",
		func() ([]*entity.Sale, error) { return r.primary.ListByDate(date) },
		func() ([]*entity.Sale, error) { return r.fallback.ListByDate(date) })
}

func (r *SaleRepo) Clear() error {
	return callErr(r.g, "sale.clear",
		func() error { return r.primary.Clear() },
		func() error { return r.fallback.Clear() })
}

// WasteRepo libro de mermas con failover primario→degradado.
type WasteRepo struct {
	primary  repository.WasteRepository
	fallback repository.WasteRepository
	g        *Guard
}

// NewWasteRepository construye el adaptador con failover.
func NewWasteRepository(primary, fallback repository.WasteRepository, g *Guard) *WasteRepo {
	return &WasteRepo{primary: primary, fallback: fallback, g: g}
}

func (r *WasteRepo) Create(w *entity.Waste) error {
	return callErr(r.g, "waste.create",
		func() error { return r.primary.Create(w) },
		func() error { return r.fallback.Create(w) })
}

func (r *WasteRepo) List() ([]*entity.Waste, error) {
	return call(r.g, "waste.list",
		func() ([]*entity.Waste, error) { return r.primary.List() },
		func() ([]*entity.Waste, error) { return r.fallback.List() })
}

func (r *WasteRepo) ListByDate(date string) ([]*entity.Waste, error) {
	return call(r.g, "waste.list_by_date",
		func() ([]*entity.Waste, error) { return r.primary.ListByDate(date) },
		func() ([]*entity.Waste, error) { return r.fallback.ListByDate(date) })
}

func (r *WasteRepo) Clear() error {
	return callErr(r.g, "waste.clear",
		func() error { return r.primary.Clear() },
		func() error { return r.fallback.Clear() })
}

// AttendanceRepo asistencia con failover primario→degradado.
type AttendanceRepo struct {
	primary  repository.AttendanceRepository
	fallback repository.AttendanceRepository
	g        *Guard
}

// NewAttendanceRepository construye el adaptador con failover.
func NewAttendanceRepository(primary, fallback repository.AttendanceRepository, g *Guard) *AttendanceRepo {
	return &AttendanceRepo{primary: primary, fallback: fallback, g: g}
}

func (r *AttendanceRepo) Create(a *entity.Attendance) error {
	return callErr(r.g, "attendance.create",
		func() error { return r.primary.Create(a) },
		func() error { return r.fallback.Create(a) })
}

func (r *AttendanceRepo) Update(a *entity.Attendance) error {
	return callErr(r.g, "attendance.update",
		func() error { return r.primary.Update(a) },
		func() error { return r.fallback.Update(a) })
}

func (r *AttendanceRepo) GetByUserAndDate(userID, date string) (*entity.Attendance, error) {
	return call(r.g, "attendance.get_by_user_and_date",
		func() (*entity.Attendance, error) { return r.primary.GetByUserAndDate(userID, date) },
		func() (*entity.Attendance, error) { return r.fallback.GetByUserAndDate(userID, date) })
}

func (r *AttendanceRepo) List() ([]*entity.Attendance, error) {
	return call(r.g, "attendance.list",
		func() ([]*entity.Attendance, error) { return r.primary.List() },
		func() ([]*entity.Attendance, error) { return r.fallback.List() })
}

func (r *AttendanceRepo) ListByDate(date string) ([]*entity.Attendance, error) {
	return call(r.g, "attendance.list_by_date",
		func() ([]*entity.Attendance, error) { return r.primary.ListByDate(date) },
		func() ([]*entity.Attendance, error) { return r.fallback.ListByDate(date) })
}

func (r *AttendanceRepo) ListByUser(userID string) ([]*entity.Attendance, error) {
	return call(r.g, "attendance.list_by_user",
		func() ([]*entity.Attendance, error) { return r.primary.ListByUser(userID) },
		func() ([]*entity.Attendance, error) { return r.fallback.ListByUser(userID) })
}

func (r *AttendanceRepo) Clear() error {
	return callErr(r.g, "attendance.clear",
		func() error { return r.primary.Clear() },
		func() error { return r.fallback.Clear() })
}

// UserRepo usuarios con failover primario→degradado.
type UserRepo struct {
	primary  repository.UserRepository
	fallback repository.UserRepository
	g        *Guard
}

// NewUserRepository construye el adaptador con failover.
func NewUserRepository(primary, fallback repository.UserRepository, g *Guard) *UserRepo {
	return &UserRepo{primary: primary, fallback: fallback, g: g}
}

func (r *UserRepo) Create(u *entity.User) error {
	return callErr(r.g, "user.create",
		func() error { return r.primary.Create(u) },
		func() error { return r.fallback.Create(u) })
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return call(r.g, "user.get",
		func() (*entity.User, error) { return r.primary.GetByID(id) },
		func() (*entity.User, error) { return r.fallback.GetByID(id) })
}

func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return call(r.g, "user.get_by_username",
		func() (*entity.User, error) { return r.primary.GetByUsername(username) },
		func() (*entity.User, error) { return r.fallback.GetByUsername(username) })
}

func (r *UserRepo) Update(u *entity.User) error {
	return callErr(r.g, "user.update",
		func() error { return r.primary.Update(u) },
		func() error { return r.fallback.Update(u) })
}

func (r *UserRepo) List() ([]*entity.User, error) {
	return call(r.g, "user.list",
		func() ([]*entity.User, error) { return r.primary.List() },
		func() ([]*entity.User, error) { return r.fallback.List() })
}

func (r *UserRepo) Clear() error {
	return callErr(r.g, "user.clear",
		func() error { return r.primary.Clear() },
		func() error { return r.fallback.Clear() })
}

// SettingsRepo configuración con failover primario→degradado.
type SettingsRepo struct {
	primary  repository.SettingsRepository
	fallback repository.SettingsRepository
	g        *Guard
}

// NewSettingsRepository construye el adaptador con failover.
func NewSettingsRepository(primary, fallback repository.SettingsRepository, g *Guard) *SettingsRepo {
	return &SettingsRepo{primary: primary, fallback: fallback, g: g}
}

func (r *SettingsRepo) Get() (*entity.Settings, error) {
	return call(r.g, "settings.get",
		func() (*entity.Settings, error) { return r.primary.Get() },
		func() (*entity.Settings, error) { return r.fallback.Get() })
}

func (r *SettingsRepo) Save(s *entity.Settings) error {
	return callErr(r.g, "settings.save",
		func() error { return r.primary.Save(s) },
		func() error { return r.fallback.Save(s) })
}

// StockMovementRepo rastro de auditoría con failover primario→degradado.
type StockMovementRepo struct {
	primary  repository.StockMovementRepository
	fallback repository.StockMovementRepository
	g        *Guard
}

// NewStockMovementRepository construye el adaptador con failover.
func NewStockMovementRepository(primary, fallback repository.StockMovementRepository, g *Guard) *StockMovementRepo {
	return &StockMovementRepo{primary: primary, fallback: fallback, g: g}
}

func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	return callErr(r.g, "movement.create",
		func() error { return r.primary.Create(m) },
		func() error { return r.fallback.Create(m) })
}

func (r *StockMovementRepo) ListByMaterial(materialID string) ([]*entity.StockMovement, error) {
	return call(r.g, "movement.list_by_material",
		func() ([]*entity.StockMovement, error) { return r.primary.ListByMaterial(materialID) },
		func() ([]*entity.StockMovement, error) { return r.fallback.ListByMaterial(materialID) })
}
