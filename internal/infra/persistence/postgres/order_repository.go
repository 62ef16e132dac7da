package postgres

import (
	"context"

	"bakeandtaste/internal/domain/entity"
	domainerrors "bakeandtaste/internal/domain/errors"
	"bakeandtaste/internal/domain/repository"
	"bakeandtaste/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	customerOrderColumns = "orders.*, cakes.name AS cake_name, cakes.price AS cake_price, " +
		"bakeries.name AS bakery_name, bakeries.address AS bakery_address"
	bakeryOrderColumns = "orders.*, cakes.name AS cake_name, cakes.price AS cake_price, " +
		"profiles.display_name AS customer_name, profiles.email AS customer_email, profiles.phone AS customer_phone"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCakeNotFound
		}
		if isRejectedValue(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("order violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order from the primary so a status check never sees a lagging replica.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// UpdateStatus is a compare-and-set on the status column. When no row matches, a primary read
// tells a missing order apart from one whose status moved on.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) (*entity.Order, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Update("status", to.String())

	if result.Error != nil {
		if isRejectedValue(result.Error) {
			return nil, domainerrors.ErrInvalidInput.WrapMessage("unknown order status")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Clauses(dbresolver.Write).
			Model(&model.OrderModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check order existence")
		}
		if count == 0 {
			return nil, repository.ErrOrderNotFound
		}

		return nil, repository.ErrOrderStatusConflict
	}

	return repo.FindByID(ctx, id)
}

// ListByCustomer returns the orders of a customer with cake and bakery details, newest first.
func (repo *orderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerOrderView, error) {
	var rows []*model.CustomerOrderRow

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select(customerOrderColumns).
		Joins("JOIN cakes ON cakes.id = orders.cake_id").
		Joins("JOIN bakeries ON bakeries.id = orders.bakery_id").
		Where("orders.customer_id = ?", customerID).
		Order("orders.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders by customer")
	}

	views := make([]*entity.CustomerOrderView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &entity.CustomerOrderView{
			Order:         *toOrderDomain(&row.OrderModel),
			CakeName:      row.CakeName,
			CakePrice:     row.CakePrice,
			BakeryName:    row.BakeryName,
			BakeryAddress: row.BakeryAddress,
		})
	}

	return views, nil
}

// ListByBakery returns the orders of a bakery with cake and customer details, newest first.
func (repo *orderRepository) ListByBakery(ctx context.Context, bakeryID uuid.UUID) ([]*entity.BakeryOrderView, error) {
	var rows []*model.BakeryOrderRow

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select(bakeryOrderColumns).
		Joins("JOIN cakes ON cakes.id = orders.cake_id").
		Joins("JOIN profiles ON profiles.id = orders.customer_id").
		Where("orders.bakery_id = ?", bakeryID).
		Order("orders.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders by bakery")
	}

	views := make([]*entity.BakeryOrderView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &entity.BakeryOrderView{
			Order:         *toOrderDomain(&row.OrderModel),
			CakeName:      row.CakeName,
			CakePrice:     row.CakePrice,
			CustomerName:  row.CustomerName,
			CustomerEmail: row.CustomerEmail,
			CustomerPhone: row.CustomerPhone,
		})
	}

	return views, nil
}

// CountByCake returns how many orders reference a cake.
func (repo *orderRepository) CountByCake(ctx context.Context, cakeID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("cake_id = ?", cakeID).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count orders by cake")
	}

	return count, nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:                  data.ID,
		CustomerID:          data.CustomerID,
		CakeID:              data.CakeID,
		BakeryID:            data.BakeryID,
		Quantity:            data.Quantity,
		TotalAmount:         data.TotalAmount,
		DeliveryType:        entity.DeliveryType(data.DeliveryType),
		DeliveryAddress:     data.DeliveryAddress,
		PreferredTime:       data.PreferredTime,
		SpecialInstructions: data.SpecialInstructions,
		Status:              entity.OrderStatus(data.Status),
		PaymentStatus:       entity.PaymentStatus(data.PaymentStatus),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:                  data.ID,
		CustomerID:          data.CustomerID,
		CakeID:              data.CakeID,
		BakeryID:            data.BakeryID,
		Quantity:            data.Quantity,
		TotalAmount:         data.TotalAmount,
		DeliveryType:        string(data.DeliveryType),
		DeliveryAddress:     data.DeliveryAddress,
		PreferredTime:       data.PreferredTime,
		SpecialInstructions: data.SpecialInstructions,
		Status:              data.Status.String(),
		PaymentStatus:       string(data.PaymentStatus),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
