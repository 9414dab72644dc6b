// Package admin agrupa las operaciones de dueño: configuración del negocio,
// carga inicial de datos y vaciado de los libros operativos.
package admin

import (
	"github.com/tu-usuario/cafe-pos/internal/application/auth"
	"github.com/tu-usuario/cafe-pos/internal/application/catalog"
	"github.com/tu-usuario/cafe-pos/internal/application/dto"
	"github.com/tu-usuario/cafe-pos/internal/application/stock"
	"github.com/tu-usuario/cafe-pos/internal/domain"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
	"github.com/tu-usuario/cafe-pos/pkg/logger"
)

// UseCase operaciones administrativas.
type UseCase struct {
	stockUC    *stock.UseCase
	productUC  *catalog.ProductUseCase
	userUC     *auth.UserUseCase
	materials  repository.MaterialRepository
	products   repository.ProductRepository
	users      repository.UserRepository
	settings   repository.SettingsRepository
	sales      repository.SaleRepository
	wastes     repository.WasteRepository
	attendance repository.AttendanceRepository
	log        *logger.Logger
}

// NewUseCase construye el caso de uso administrativo.
func NewUseCase(
	stockUC *stock.UseCase,
	productUC *catalog.ProductUseCase,
	userUC *auth.UserUseCase,
	materials repository.MaterialRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	settings repository.SettingsRepository,
	sales repository.SaleRepository,
	wastes repository.WasteRepository,
	attendance repository.AttendanceRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		stockUC:    stockUC,
		productUC:  productUC,
		userUC:     userUC,
		materials:  materials,
		products:   products,
		users:      users,
		settings:   settings,
		sales:      sales,
		wastes:     wastes,
		attendance: attendance,
		log:        log.Component("admin"),
	}
}

// GetSettings devuelve la configuración vigente, o los valores por defecto
// si nunca se guardó ninguna.
func (uc *UseCase) GetSettings() (*dto.SettingsDTO, error) {
	cfg, err := uc.settings.Get()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = entity.DefaultSettings()
	}
	return dto.ToSettingsDTO(cfg), nil
}

// UpdateSettings reemplaza la configuración del negocio.
func (uc *UseCase) UpdateSettings(in dto.SettingsDTO) (*dto.SettingsDTO, error) {
	if in.WorkStartTime == "" || in.WorkEndTime == "" {
		return nil, domain.ErrInvalidInput
	}
	cfg := in.ToSettingsEntity()
	if err := uc.settings.Save(cfg); err != nil {
		return nil, err
	}
	return dto.ToSettingsDTO(cfg), nil
}

// Init siembra el catálogo completo: reemplaza materias primas, productos,
// usuarios y configuración, y vacía los libros de ventas, asistencia y mermas.
// Las recetas de la carga referencian materiales por nombre; se resuelven
// contra los materiales recién creados en la misma petición.
func (uc *UseCase) Init(in dto.InitDataRequest) error {
	if err := uc.ClearData(); err != nil {
		return err
	}
	if err := uc.materials.Clear(); err != nil {
		return err
	}
	if err := uc.products.Clear(); err != nil {
		return err
	}
	if err := uc.users.Clear(); err != nil {
		return err
	}

	// Materias primas primero: las recetas dependen de sus IDs.
	materialIDs := make(map[string]string, len(in.Materials))
	for _, m := range in.Materials {
		created, err := uc.stockUC.CreateMaterial(m)
		if err != nil {
			return err
		}
		materialIDs[created.Name] = created.ID
	}

	for _, p := range in.Products {
		recipe := make([]dto.RecipeItemRequest, 0, len(p.Recipe))
		for _, item := range p.Recipe {
			id, ok := materialIDs[item.MaterialName]
			if !ok {
				uc.log.Warn().Str("material", item.MaterialName).Str("producto", p.Name).
					Msg("receta referencia un material que no viene en la carga")
				return domain.ErrNotFound
			}
			recipe = append(recipe, dto.RecipeItemRequest{MaterialID: id, Quantity: item.Quantity})
		}
		if _, err := uc.productUC.Create(dto.CreateProductRequest{
			Name:     p.Name,
			Price:    p.Price,
			Category: p.Category,
			Recipe:   recipe,
		}); err != nil {
			return err
		}
	}

	for _, u := range in.Users {
		if _, err := uc.userUC.Create(u); err != nil {
			return err
		}
	}

	if in.Settings != nil {
		if err := uc.settings.Save(in.Settings.ToSettingsEntity()); err != nil {
			return err
		}
	}

	uc.log.Info().
		Int("materiales", len(in.Materials)).
		Int("productos", len(in.Products)).
		Int("usuarios", len(in.Users)).
		Msg("carga inicial aplicada")
	return nil
}

// ClearData vacía los libros operativos (ventas, asistencia y mermas) sin
// tocar catálogo, materias primas ni usuarios.
func (uc *UseCase) ClearData() error {
	if err := uc.sales.Clear(); err != nil {
		return err
	}
	if err := uc.attendance.Clear(); err != nil {
		return err
	}
	if err := uc.wastes.Clear(); err != nil {
		return err
	}
	uc.log.Info().Msg("libros operativos vaciados")
	return nil
}
