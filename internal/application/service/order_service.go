package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/application/pricing"
	"github.com/platemate/platemate-api/internal/domain/entity"
	"github.com/platemate/platemate-api/internal/domain/enum"
	"github.com/platemate/platemate-api/internal/domain/repository"
	infraRepo "github.com/platemate/platemate-api/internal/infrastructure/repository"
	"github.com/platemate/platemate-api/pkg/apperror"
	"github.com/platemate/platemate-api/pkg/pagination"
	"github.com/platemate/platemate-api/pkg/utils"
)

// OrderService handles order placement and lifecycle
type OrderService struct {
	orderRepo     repository.OrderRepository
	orderLineRepo repository.OrderLineRepository
	branchRepo    repository.BranchRepository
	menuItemRepo  repository.MenuItemRepository
	dealRepo      repository.DealRepository
	recipeRepo    repository.RecipeRepository
	inventoryRepo repository.InventoryRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	orderLineRepo repository.OrderLineRepository,
	branchRepo repository.BranchRepository,
	menuItemRepo repository.MenuItemRepository,
	dealRepo repository.DealRepository,
	recipeRepo repository.RecipeRepository,
	inventoryRepo repository.InventoryRepository,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		orderLineRepo: orderLineRepo,
		branchRepo:    branchRepo,
		menuItemRepo:  menuItemRepo,
		dealRepo:      dealRepo,
		recipeRepo:    recipeRepo,
		inventoryRepo: inventoryRepo,
	}
}

// OrderModifierInput is a selected modifier on an order line
type OrderModifierInput struct {
	ModifierID uuid.UUID
	Quantity   int
}

// OrderCustomizationInput is a chosen option within one customization group
type OrderCustomizationInput struct {
	CustomizationID uuid.UUID
	OptionID        uuid.UUID
}

// OrderLineInput represents one line of an order: a menu item with a
// chosen variant, or a deal. Exactly one of MenuItemID/DealID must be set.
type OrderLineInput struct {
	MenuItemID     *uuid.UUID
	DealID         *uuid.UUID
	VariantID      *uuid.UUID
	Quantity       int
	Modifiers      []OrderModifierInput
	Customizations []OrderCustomizationInput
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	UserID        uuid.UUID
	BranchID      uuid.UUID
	OrderType     enum.OrderType
	CustomerName  *string
	CustomerPhone *string
	Tip           float64
	Delivery      *entity.DeliveryDetail
	Pickup        *entity.PickupDetail
	Lines         []OrderLineInput
}

// CreateOrder prices and persists a new order. Totals come from the
// branch configuration; inventory is consumed through recipes.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Order must have at least one line")
	}

	if !input.OrderType.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid order type")
	}

	branch, err := s.branchRepo.GetByID(ctx, input.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, apperror.NewNotFoundError("Branch")
	}
	if !branch.Configuration.Validate() {
		return nil, apperror.NewAppError(422, "Branch configuration is invalid")
	}

	// Batch fetch menu items and deals in one query each (prevents N+1)
	var menuItemIDs, dealIDs []uuid.UUID
	for _, line := range input.Lines {
		switch {
		case line.MenuItemID != nil && line.DealID == nil:
			menuItemIDs = append(menuItemIDs, *line.MenuItemID)
		case line.DealID != nil && line.MenuItemID == nil:
			dealIDs = append(dealIDs, *line.DealID)
		default:
			return nil, apperror.NewBadRequestError("Order line must reference exactly one of menu item or deal")
		}
	}

	menuItems, err := s.menuItemRepo.GetByIDs(ctx, menuItemIDs)
	if err != nil {
		return nil, err
	}
	menuItemMap := make(map[uuid.UUID]*entity.MenuItem, len(menuItems))
	for i := range menuItems {
		menuItemMap[menuItems[i].ID] = &menuItems[i]
	}

	deals, err := s.dealRepo.GetByIDs(ctx, dealIDs)
	if err != nil {
		return nil, err
	}
	dealMap := make(map[uuid.UUID]*entity.Deal, len(deals))
	for i := range deals {
		dealMap[deals[i].ID] = &deals[i]
	}

	now := time.Now()
	orderLines := make([]entity.OrderLine, 0, len(input.Lines))
	var subTotal float64

	for _, line := range input.Lines {
		if line.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Line quantity must be positive")
		}

		var (
			priced pricing.Line
			ol     entity.OrderLine
		)

		if line.MenuItemID != nil {
			item, exists := menuItemMap[*line.MenuItemID]
			if !exists {
				return nil, apperror.NewNotFoundError(fmt.Sprintf("Menu item %s", *line.MenuItemID))
			}
			if !item.IsActive {
				return nil, apperror.NewBadRequestError(fmt.Sprintf("Menu item %q is not available", item.Name))
			}

			priced = pricing.Line{
				Selection: pricing.MenuItemSelection{
					Variants:        variantCatalog(item.Variants),
					ChosenVariantID: line.VariantID,
					Modifiers:       modifierCatalog(item.Modifiers),
					Customizations:  customizationCatalog(item.Customizations),
				},
				Quantity:       line.Quantity,
				Modifiers:      modifierChoices(line.Modifiers),
				Customizations: customizationChoices(line.Customizations),
				Discount:       itemDiscount(item.Discount, now),
			}

			ol = entity.OrderLine{
				MenuItemID:     line.MenuItemID,
				VariantID:      resolveVariantID(item.Variants, line.VariantID),
				Name:           item.Name,
				Quantity:       line.Quantity,
				Modifiers:      snapshotModifiers(item.Modifiers, line.Modifiers),
				Customizations: snapshotCustomizations(item.Customizations, line.Customizations),
			}
		} else {
			deal, exists := dealMap[*line.DealID]
			if !exists {
				return nil, apperror.NewNotFoundError(fmt.Sprintf("Deal %s", *line.DealID))
			}
			if !deal.IsActive || !deal.IsCurrent(now) {
				return nil, apperror.NewBadRequestError(fmt.Sprintf("Deal %q is not available", deal.Name))
			}

			priced = pricing.Line{
				Selection: pricing.DealSelection{Price: deal.Price},
				Quantity:  line.Quantity,
				Discount:  itemDiscount(deal.Discount, now),
			}

			ol = entity.OrderLine{
				DealID:   line.DealID,
				Name:     deal.Name,
				Quantity: line.Quantity,
			}
		}

		unitPrice, err := pricing.UnitPrice(priced)
		if err != nil {
			return nil, apperror.NewAppError(422, err.Error())
		}

		ol.UnitPrice = pricing.Round2(unitPrice)
		ol.Total = pricing.Round2(unitPrice * float64(line.Quantity))
		subTotal += unitPrice * float64(line.Quantity)
		orderLines = append(orderLines, ol)
	}

	// Consume inventory through recipes, atomically across all lines
	stockDecrements, err := s.recipeDecrements(ctx, orderLines, dealMap)
	if err != nil {
		return nil, err
	}

	failedIDs, err := s.inventoryRepo.AtomicDecrementBatch(ctx, stockDecrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		items, lookupErr := s.inventoryRepo.GetByIDs(ctx, failedIDs)
		if lookupErr != nil {
			return nil, lookupErr
		}
		var names []string
		for _, it := range items {
			names = append(names, it.Name)
		}
		return nil, apperror.NewAppError(400, fmt.Sprintf("Insufficient stock for: %v", names))
	}

	policy := pricing.BranchPolicy{
		DiscountPercentage:      branch.Configuration.DiscountPercentage,
		TaxPercentage:           branch.Configuration.TaxPercentage,
		ServiceChargePercentage: branch.Configuration.ServiceChargePercentage,
		DiscountOnTotal:         branch.Configuration.DiscountOnTotal,
	}
	totals := pricing.ComputeTotals(subTotal, policy, input.Tip).Rounded()

	order := &entity.Order{
		TenantID:       tenantID,
		BranchID:       input.BranchID,
		UserID:         input.UserID,
		OrderNumber:    utils.GenerateOrderNumber(),
		OrderType:      input.OrderType,
		OrderStatus:    enum.OrderStatusPending,
		OrderDate:      now,
		CustomerName:   input.CustomerName,
		CustomerPhone:  input.CustomerPhone,
		Currency:       branch.Currency,
		SubTotal:       totals.SubTotal,
		DiscountAmount: totals.DiscountAmount,
		TaxAmount:      totals.TaxAmount,
		ServiceCharges: totals.ServiceCharges,
		TipAmount:      totals.TipAmount,
		TotalAmount:    totals.TotalAmount,
		Delivery:       input.Delivery,
		Pickup:         input.Pickup,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		// Stock was already decremented, restore it
		_ = s.inventoryRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	for i := range orderLines {
		orderLines[i].OrderID = order.ID
	}

	if err := s.orderLineRepo.CreateBatch(ctx, orderLines); err != nil {
		_ = s.inventoryRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	return s.orderRepo.GetWithLines(ctx, order.ID)
}

// recipeDecrements builds the inventory consumption map for an order.
// Menu item lines consume their variant's recipe; deal lines consume the
// recipes of every component of the deal. Lines without recipes consume
// nothing.
func (s *OrderService) recipeDecrements(ctx context.Context, lines []entity.OrderLine, dealMap map[uuid.UUID]*entity.Deal) (map[uuid.UUID]float64, error) {
	decrements := make(map[uuid.UUID]float64)

	addRecipe := func(items []entity.RecipeItem, multiplier float64) {
		for _, ri := range items {
			decrements[ri.InventoryItemID] += ri.Quantity * multiplier
		}
	}

	for _, line := range lines {
		qty := float64(line.Quantity)

		if line.MenuItemID != nil && line.VariantID != nil {
			recipe, err := s.recipeRepo.GetByVariant(ctx, *line.MenuItemID, *line.VariantID)
			if err != nil {
				return nil, err
			}
			addRecipe(recipe, qty)
			continue
		}

		if line.DealID != nil {
			deal, exists := dealMap[*line.DealID]
			if !exists {
				continue
			}
			for _, di := range deal.Items {
				switch {
				case di.MenuItemID != nil && di.VariantID != nil:
					recipe, err := s.recipeRepo.GetByVariant(ctx, *di.MenuItemID, *di.VariantID)
					if err != nil {
						return nil, err
					}
					addRecipe(recipe, qty*float64(di.Quantity))
				case di.SubMenuItemID != nil:
					recipe, err := s.recipeRepo.GetBySubMenuItem(ctx, *di.SubMenuItemID)
					if err != nil {
						return nil, err
					}
					addRecipe(recipe, qty*float64(di.Quantity))
				}
			}
		}
	}

	return decrements, nil
}

// GetOrder retrieves an order by ID with its lines
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with filtering
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// ListOrdersWithCursor lists orders with cursor-based pagination
func (s *OrderService) ListOrdersWithCursor(ctx context.Context, params *repository.OrderCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Order], error) {
	orders, err := s.orderRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(orders, params.Cursor.Limit,
		func(o entity.Order) string { return o.ID.String() },
		func(o entity.Order) time.Time { return o.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdateOrderStatus updates the status of an order
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status enum.OrderStatus) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	if order.OrderStatus == enum.OrderStatusCancel {
		return apperror.NewAppError(400, "Cancelled orders cannot change status")
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, status)
}

// CancelOrder cancels an order and restores consumed inventory
func (s *OrderService) CancelOrder(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.orderRepo.GetWithLines(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	if order.OrderStatus == enum.OrderStatusCancel {
		return apperror.NewAppError(400, "Order is already cancelled")
	}
	if order.OrderStatus == enum.OrderStatusComplete {
		return apperror.NewAppError(400, "Completed orders cannot be cancelled")
	}

	dealIDs := make([]uuid.UUID, 0)
	for _, line := range order.Lines {
		if line.DealID != nil {
			dealIDs = append(dealIDs, *line.DealID)
		}
	}
	deals, err := s.dealRepo.GetByIDs(ctx, dealIDs)
	if err != nil {
		return err
	}
	dealMap := make(map[uuid.UUID]*entity.Deal, len(deals))
	for i := range deals {
		dealMap[deals[i].ID] = &deals[i]
	}

	stockIncrements, err := s.recipeDecrements(ctx, order.Lines, dealMap)
	if err != nil {
		return err
	}

	if err := s.inventoryRepo.AtomicIncrementBatch(ctx, stockIncrements); err != nil {
		return err
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, enum.OrderStatusCancel)
}

func variantCatalog(variants []entity.Variant) []pricing.Variant {
	out := make([]pricing.Variant, len(variants))
	for i, v := range variants {
		out[i] = pricing.Variant{ID: v.ID, Price: v.Price}
	}
	return out
}

func modifierCatalog(modifiers []entity.Modifier) []pricing.Modifier {
	out := make([]pricing.Modifier, len(modifiers))
	for i, m := range modifiers {
		out[i] = pricing.Modifier{ID: m.ID, Price: m.Price}
	}
	return out
}

func customizationCatalog(customizations []entity.Customization) []pricing.CustomizationGroup {
	out := make([]pricing.CustomizationGroup, len(customizations))
	for i, c := range customizations {
		options := make([]pricing.Option, len(c.Options))
		for j, o := range c.Options {
			options[j] = pricing.Option{ID: o.ID, Price: o.Price}
		}
		out[i] = pricing.CustomizationGroup{ID: c.ID, Options: options}
	}
	return out
}

func modifierChoices(inputs []OrderModifierInput) []pricing.ModifierChoice {
	out := make([]pricing.ModifierChoice, len(inputs))
	for i, in := range inputs {
		out[i] = pricing.ModifierChoice{ModifierID: in.ModifierID, Quantity: in.Quantity}
	}
	return out
}

func customizationChoices(inputs []OrderCustomizationInput) []pricing.CustomizationChoice {
	out := make([]pricing.CustomizationChoice, len(inputs))
	for i, in := range inputs {
		out[i] = pricing.CustomizationChoice{CustomizationID: in.CustomizationID, OptionID: in.OptionID}
	}
	return out
}

func itemDiscount(discount *entity.Discount, at time.Time) *pricing.Discount {
	if discount == nil || !discount.IsCurrent(at) || discount.Scope != enum.DiscountScopeLine {
		return nil
	}
	return &pricing.Discount{Value: discount.Value}
}

// resolveVariantID mirrors the first-variant fallback used in pricing so
// the stored line matches what was charged.
func resolveVariantID(variants []entity.Variant, chosen *uuid.UUID) *uuid.UUID {
	if chosen != nil {
		for _, v := range variants {
			if v.ID == *chosen {
				id := v.ID
				return &id
			}
		}
	}
	if len(variants) > 0 {
		id := variants[0].ID
		return &id
	}
	return nil
}

func snapshotModifiers(catalog []entity.Modifier, inputs []OrderModifierInput) []entity.LineModifier {
	if len(inputs) == 0 {
		return nil
	}
	byID := make(map[uuid.UUID]*entity.Modifier, len(catalog))
	for i := range catalog {
		byID[catalog[i].ID] = &catalog[i]
	}
	out := make([]entity.LineModifier, 0, len(inputs))
	for _, in := range inputs {
		m, exists := byID[in.ModifierID]
		if !exists {
			continue
		}
		out = append(out, entity.LineModifier{
			ModifierID: m.ID,
			Name:       m.Name,
			Quantity:   in.Quantity,
			Price:      m.Price,
		})
	}
	return out
}

func snapshotCustomizations(catalog []entity.Customization, inputs []OrderCustomizationInput) []entity.LineCustomization {
	if len(inputs) == 0 {
		return nil
	}
	out := make([]entity.LineCustomization, 0, len(inputs))
	for _, in := range inputs {
		for i := range catalog {
			if catalog[i].ID != in.CustomizationID {
				continue
			}
			for _, o := range catalog[i].Options {
				if o.ID == in.OptionID {
					out = append(out, entity.LineCustomization{
						CustomizationID: catalog[i].ID,
						OptionID:        o.ID,
						Name:            catalog[i].Name,
						Option:          o.Name,
						Price:           o.Price,
					})
				}
			}
		}
	}
	return out
}
