package localstore

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafe-pos/internal/domain"
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

// MaterialRepo materias primas sobre el store local.
type MaterialRepo struct{ store *Store }

// NewMaterialRepository construye el adaptador local de materias primas.
func NewMaterialRepository(s *Store) *MaterialRepo { return &MaterialRepo{store: s} }

func (r *MaterialRepo) Create(m *entity.RawMaterial) error {
	items, err := load[*entity.RawMaterial](r.store, colMaterials)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.ID == m.ID {
			return domain.ErrDuplicate
		}
	}
	return save(r.store, colMaterials, append(items, m))
}

func (r *MaterialRepo) GetByID(id string) (*entity.RawMaterial, error) {
	items, err := load[*entity.RawMaterial](r.store, colMaterials)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

// GetForUpdate en el store local equivale a GetByID: el mutex del Store ya
// serializa a los escritores.
func (r *MaterialRepo) GetForUpdate(id string) (*entity.RawMaterial, error) {
	return r.GetByID(id)
}

func (r *MaterialRepo) Update(m *entity.RawMaterial) error {
	items, err := load[*entity.RawMaterial](r.store, colMaterials)
	if err != nil {
		return err
	}
	for i, it := range items {
		if it.ID == m.ID {
			items[i] = m
			return save(r.store, colMaterials, items)
		}
	}
	return domain.ErrNotFound
}

func (r *MaterialRepo) UpdateStock(id string, quantity decimal.Decimal) error {
	items, err := load[*entity.RawMaterial](r.store, colMaterials)
	if err != nil {
		return err
	}
	for i, it := range items {
		if it.ID == id {
			items[i].CurrentStock = quantity
			return save(r.store, colMaterials, items)
		}
	}
	return domain.ErrNotFound
}

func (r *MaterialRepo) List() ([]*entity.RawMaterial, error) {
	return load[*entity.RawMaterial](r.store, colMaterials)
}

func (r *MaterialRepo) Clear() error {
	return save(r.store, colMaterials, []*entity.RawMaterial{})
}

// ProductRepo catálogo sobre el store local.
type ProductRepo struct{ store *Store }

// NewProductRepository construye el adaptador local del catálogo.
func NewProductRepository(s *Store) *ProductRepo { return &ProductRepo{store: s} }

func (r *ProductRepo) Create(p *entity.Product) error {
	items, err := load[*entity.Product](r.store, colProducts)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.ID == p.ID || it.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	return save(r.store, colProducts, append(items, p))
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	items, err := load[*entity.Product](r.store, colProducts)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	items, err := load[*entity.Product](r.store, colProducts)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.SKU == sku {
			return it, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) Update(p *entity.Product) error {
	items, err := load[*entity.Product](r.store, colProducts)
	if err != nil {
		return err
	}
	for i, it := range items {
		if it.ID == p.ID {
			items[i] = p
			return save(r.store, colProducts, items)
		}
	}
	return domain.ErrNotFound
}

func (r *ProductRepo) List() ([]*entity.Product, error) {
	return load[*entity.Product](r.store, colProducts)
}

func (r *ProductRepo) Clear() error {
	return save(r.store, colProducts, []*entity.Product{})
}

// SaleRepo libro de ventas sobre el store local.
type SaleRepo struct{ store *Store }

// NewSaleRepository construye el adaptador local del libro de ventas.
func NewSaleRepository(s *Store) *SaleRepo { return &SaleRepo{store: s} }

func (r *SaleRepo) Create(sale *entity.Sale) error {
	items, err := load[*entity.Sale](r.store, colSales)
	if err != nil {
		return err
	}
	return save(r.store, colSales, append(items, sale))
}

func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	items, err := load[*entity.Sale](r.store, colSales)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

func (r *SaleRepo) List() ([]*entity.Sale, error) {
	return load[*entity.Sale](r.store, colSales)
}

func (r *SaleRepo) ListByDate(date string) ([]*entity.Sale, error) {
	items, err := load[*entity.Sale](r.store, colSales)
	if err != nil {
		return nil, err
	}
	var out []*entity.Sale
	for _, it := range items {
		if it.Timestamp.Format(entity.DateLayout) == date {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *SaleRepo) Clear() error {
	return save(r.store, colSales, []*entity.Sale{})
}

// WasteRepo libro de mermas sobre el store local.
type WasteRepo struct{ store *Store }

// NewWasteRepository construye el adaptador local del libro de mermas.
func NewWasteRepository(s *Store) *WasteRepo { return &WasteRepo{store: s} }

func (r *WasteRepo) Create(w *entity.Waste) error {
	items, err := load[*entity.Waste](r.store, colWastes)
	if err != nil {
		return err
	}
	return save(r.store, colWastes, append(items, w))
}

func (r *WasteRepo) List() ([]*entity.Waste, error) {
	return load[*entity.Waste](r.store, colWastes)
}

func (r *WasteRepo) ListByDate(date string) ([]*entity.Waste, error) {
	items, err := load[*entity.Waste](r.store, colWastes)
	if err != nil {
		return nil, err
	}
	var out []*entity.Waste
	for _, it := range items {
		if it.Date == date {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *WasteRepo) Clear() error {
	return save(r.store, colWastes, []*entity.Waste{})
}

// AttendanceRepo asistencia sobre el store local.
type AttendanceRepo struct{ store *Store }

// NewAttendanceRepository construye el adaptador local de asistencia.
func NewAttendanceRepository(s *Store) *AttendanceRepo { return &AttendanceRepo{store: s} }

func (r *AttendanceRepo) Create(a *entity.Attendance) error {
	items, err := load[*entity.Attendance](r.store, colAttendance)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.UserID == a.UserID && it.Date == a.Date {
			return domain.ErrConflict
		}
	}
	return save(r.store, colAttendance, append(items, a))
}

func (r *AttendanceRepo) Update(a *entity.Attendance) error {
	items, err := load[*entity.Attendance](r.store, colAttendance)
	if err != nil {
		return err
	}
	for i, it := range items {
		if it.ID == a.ID {
			items[i] = a
			return save(r.store, colAttendance, items)
		}
	}
	return domain.ErrNotFound
}

func (r *AttendanceRepo) GetByUserAndDate(userID, date string) (*entity.Attendance, error) {
	items, err := load[*entity.Attendance](r.store, colAttendance)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.UserID == userID && it.Date == date {
			return it, nil
		}
	}
	return nil, nil
}

func (r *AttendanceRepo) List() ([]*entity.Attendance, error) {
	return load[*entity.Attendance](r.store, colAttendance)
}

func (r *AttendanceRepo) ListByDate(date string) ([]*entity.Attendance, error) {
	items, err := load[*entity.Attendance](r.store, colAttendance)
	if err != nil {
		return nil, err
	}
	var out []*entity.Attendance
	for _, it := range items {
		if it.Date == date {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *AttendanceRepo) ListByUser(userID string) ([]*entity.Attendance, error) {
	items, err := load[*entity.Attendance](r.store, colAttendance)
	if err != nil {
		return nil, err
	}
	var out []*entity.Attendance
	for _, it := range items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *AttendanceRepo) Clear() error {
	return save(r.store, colAttendance, []*entity.Attendance{})
}

// UserRepo usuarios sobre el store local.
type UserRepo struct{ store *Store }

// NewUserRepository construye el adaptador local de usuarios.
func NewUserRepository(s *Store) *UserRepo { return &UserRepo{store: s} }

func (r *UserRepo) Create(u *entity.User) error {
	items, err := load[*entity.User](r.store, colUsers)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.ID == u.ID || it.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	return save(r.store, colUsers, append(items, u))
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	items, err := load[*entity.User](r.store, colUsers)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	items, err := load[*entity.User](r.store, colUsers)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.Username == username {
			return it, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(u *entity.User) error {
	items, err := load[*entity.User](r.store, colUsers)
	if err != nil {
		return err
	}
	for i, it := range items {
		if it.ID == u.ID {
			items[i] = u
			return save(r.store, colUsers, items)
		}
	}
	return domain.ErrNotFound
}

func (r *UserRepo) List() ([]*entity.User, error) {
	return load[*entity.User](r.store, colUsers)
}

func (r *UserRepo) Clear() error {
	return save(r.store, colUsers, []*entity.User{})
}

// SettingsRepo configuración sobre el store local.
type SettingsRepo struct{ store *Store }

// NewSettingsRepository construye el adaptador local de configuración.
func NewSettingsRepository(s *Store) *SettingsRepo { return &SettingsRepo{store: s} }

func (r *SettingsRepo) Get() (*entity.Settings, error) {
	return loadObject[entity.Settings](r.store, colSettings)
}

func (r *SettingsRepo) Save(s *entity.Settings) error {
	return saveObject(r.store, colSettings, s)
}

// StockMovementRepo rastro de auditoría sobre el store local.
type StockMovementRepo struct{ store *Store }

// NewStockMovementRepository construye el adaptador local de movimientos.
func NewStockMovementRepository(s *Store) *StockMovementRepo {
	return &StockMovementRepo{store: s}
}

func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	items, err := load[*entity.StockMovement](r.store, colMovements)
	if err != nil {
		return err
	}
	return save(r.store, colMovements, append(items, m))
}

func (r *StockMovementRepo) ListByMaterial(materialID string) ([]*entity.StockMovement, error) {
	items, err := load[*entity.StockMovement](r.store, colMovements)
	if err != nil {
		return nil, err
	}
	var out []*entity.StockMovement
	for _, it := range items {
		if it.MaterialID == materialID {
			out = append(out, it)
		}
	}
	return out, nil
}
