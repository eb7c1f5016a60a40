package stockrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockRepository implements the stock lookup over the stock_levels
// table. Reads are snapshot-style: no reservations and no locking.
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// StockLevels returns the current quantity for each requested key.
// Keys without a stored row are absent from the result; the classifier
// treats them as critical.
func (r *GormStockRepository) StockLevels(
	ctx context.Context,
	keys []services.StockKey,
) (services.StockSnapshot, error) {
	if len(keys) == 0 {
		return services.StockSnapshot{}, nil
	}

	requested := make(map[[2]uuid.UUID]services.StockKey, len(keys))
	productIDs := make([]uuid.UUID, 0, len(keys))
	for _, key := range keys {
		productID := key.ProductID.Bytes()
		variantID := key.VariantID.Bytes()
		if _, ok := requested[[2]uuid.UUID{productID, variantID}]; !ok {
			productIDs = append(productIDs, productID)
		}
		requested[[2]uuid.UUID{productID, variantID}] = key
	}

	var rows []StockLevelDTO
	err := r.db.WithContext(ctx).
		Find(&rows, "product_id IN ?", productIDs).Error
	if err != nil {
		return nil, err
	}

	snapshot := make(services.StockSnapshot, len(rows))
	for _, row := range rows {
		key, ok := requested[[2]uuid.UUID{row.ProductID, row.VariantID}]
		if !ok {
			continue
		}
		snapshot[key] = row.Quantity
	}

	return snapshot, nil
}

// LowStockRow is one stock row at or below a sweep threshold.
type LowStockRow struct {
	Key      services.StockKey
	Quantity int
}

// Below returns all stock rows whose quantity is below the threshold,
// lowest first. Used by the periodic low-stock sweep.
func (r *GormStockRepository) Below(ctx context.Context, threshold int) ([]LowStockRow, error) {
	var rows []StockLevelDTO
	err := r.db.WithContext(ctx).
		Where("quantity < ?", threshold).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "quantity"}}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]LowStockRow, 0, len(rows))
	for _, row := range rows {
		key, keyErr := keyFromRow(row)
		if keyErr != nil {
			return nil, keyErr
		}
		result = append(result, LowStockRow{Key: key, Quantity: row.Quantity})
	}

	return result, nil
}

// Set writes the current quantity for a product/variant, inserting the
// row when absent. Stock data originates outside the fulfillment core;
// this is the ingestion hook.
func (r *GormStockRepository) Set(ctx context.Context, key services.StockKey, quantity int) error {
	row := StockLevelDTO{
		ProductID: key.ProductID.Bytes(),
		VariantID: key.VariantID.Bytes(),
		Quantity:  quantity,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "variant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).
		Create(&row).Error
}

func keyFromRow(row StockLevelDTO) (services.StockKey, error) {
	productID, err := kernel.UUIDFromBytes(row.ProductID[:])
	if err != nil {
		return services.StockKey{}, err
	}

	key := services.StockKey{ProductID: productID}
	if row.VariantID != uuid.Nil {
		variantID, variantErr := kernel.UUIDFromBytes(row.VariantID[:])
		if variantErr != nil {
			return services.StockKey{}, variantErr
		}
		key.VariantID = variantID
	}

	return key, nil
}
