package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"tiffin-finder/kitchen-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *domain.User) error {
	meta, err := json.Marshal(user.Metadata)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.PasswordHash, meta, user.CreatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrEmailTaken
	}
	return err
}

const userColumns = "id, email, password_hash, metadata, created_at, updated_at"

func scanUser(row interface{ Scan(...interface{}) error }) (*domain.User, error) {
	var user domain.User
	var meta []byte
	var updatedAt sql.NullTime
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &meta, &user.CreatedAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &user.Metadata); err != nil {
			return nil, fmt.Errorf("decode user metadata: %w", err)
		}
	}
	if updatedAt.Valid {
		user.UpdatedAt = &updatedAt.Time
	}
	return &user, nil
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.DB.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email))
}

func (r *PostgresRepository) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return scanUser(r.DB.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
}

func (r *PostgresRepository) UpdateUserMetadata(ctx context.Context, id uuid.UUID, meta domain.UserMetadata) (*domain.User, error) {
	payload, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}
	return scanUser(r.DB.QueryRowContext(ctx,
		"UPDATE users SET metadata = $1, updated_at = NOW() WHERE id = $2 RETURNING "+userColumns,
		payload, id))
}

const kitchenColumns = `id, user_id, name, owner_name, story, cuisine_type, description, phone, email,
	address, is_active, status, opening_time, closing_time, rating, review_count,
	cover_image, gallery_images, created_at, updated_at`

func scanKitchen(row interface{ Scan(...interface{}) error }) (*domain.Kitchen, error) {
	var k domain.Kitchen
	if err := row.Scan(&k.ID, &k.UserID, &k.Name, &k.OwnerName, &k.Story, &k.CuisineType, &k.Description,
		&k.Phone, &k.Email, &k.Address, &k.IsActive, &k.Status, &k.OpeningTime, &k.ClosingTime,
		&k.Rating, &k.ReviewCount, &k.CoverImage, pq.Array(&k.GalleryImages), &k.CreatedAt, &k.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrKitchenNotFound
		}
		return nil, err
	}
	return &k, nil
}

func (r *PostgresRepository) ListActiveApproved(ctx context.Context) ([]domain.Kitchen, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+kitchenColumns+`
		FROM kitchens
		WHERE is_active = TRUE AND status = 'approved'
		ORDER BY rating DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var kitchens []domain.Kitchen
	for rows.Next() {
		k, err := scanKitchen(rows)
		if err != nil {
			return nil, err
		}
		kitchens = append(kitchens, *k)
	}
	return kitchens, rows.Err()
}

func (r *PostgresRepository) GetKitchen(ctx context.Context, id uuid.UUID) (*domain.Kitchen, error) {
	return scanKitchen(r.DB.QueryRowContext(ctx, "SELECT "+kitchenColumns+" FROM kitchens WHERE id = $1", id))
}

func (r *PostgresRepository) CreateKitchen(ctx context.Context, k *domain.Kitchen) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO kitchens (id, user_id, name, owner_name, story, cuisine_type, description, phone, email,
			address, is_active, status, opening_time, closing_time, rating, review_count,
			cover_image, gallery_images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		k.ID, k.UserID, k.Name, k.OwnerName, k.Story, k.CuisineType, k.Description, k.Phone, k.Email,
		k.Address, k.IsActive, k.Status, k.OpeningTime, k.ClosingTime, k.Rating, k.ReviewCount,
		k.CoverImage, pq.Array(k.GalleryImages), k.CreatedAt, k.UpdatedAt)
	return err
}

func (r *PostgresRepository) UpdateKitchenStatus(ctx context.Context, id uuid.UUID, status domain.KitchenStatus, isActive bool) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE kitchens SET status = $1, is_active = $2, updated_at = NOW() WHERE id = $3",
		status, isActive, id)
	if err != nil {
		return err
	}
	return requireRow(result, domain.ErrKitchenNotFound)
}

func (r *PostgresRepository) UpdateKitchenImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE kitchens SET cover_image = $1, updated_at = NOW() WHERE id = $2", imageURL, id)
	if err != nil {
		return err
	}
	return requireRow(result, domain.ErrKitchenNotFound)
}

func (r *PostgresRepository) ListKitchenReviews(ctx context.Context, kitchenID uuid.UUID) ([]domain.Review, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT rv.id, rv.user_id, COALESCE(u.metadata->>'name', ''), rv.kitchen_id, rv.order_id,
			rv.rating, COALESCE(rv.comment, ''), rv.photos, rv.created_at
		FROM reviews rv
		LEFT JOIN users u ON u.id = rv.user_id
		WHERE rv.kitchen_id = $1
		ORDER BY rv.created_at DESC`, kitchenID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.UserName, &rev.KitchenID, &rev.OrderID,
			&rev.Rating, &rev.Comment, pq.Array(&rev.Photos), &rev.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

const menuColumns = `id, kitchen_id, name, description, price, category, is_available, dietary_info,
	image_url, preparation_time, created_at, updated_at`

func scanMenuItem(row interface{ Scan(...interface{}) error }) (*domain.MenuItem, error) {
	var m domain.MenuItem
	if err := row.Scan(&m.ID, &m.KitchenID, &m.Name, &m.Description, &m.Price, &m.Category, &m.IsAvailable,
		&m.DietaryInfo, &m.ImageURL, &m.PreparationTime, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, m *domain.MenuItem) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO menu_items (id, kitchen_id, name, description, price, category, is_available,
			dietary_info, image_url, preparation_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		m.ID, m.KitchenID, m.Name, m.Description, m.Price, m.Category, m.IsAvailable,
		m.DietaryInfo, m.ImageURL, m.PreparationTime, m.CreatedAt, m.UpdatedAt)
	return err
}

func (r *PostgresRepository) queryMenuItems(ctx context.Context, query string, args ...interface{}) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, kitchenID uuid.UUID) ([]domain.MenuItem, error) {
	return r.queryMenuItems(ctx, `
		SELECT `+menuColumns+`
		FROM menu_items
		WHERE kitchen_id = $1
		ORDER BY category, name`, kitchenID)
}

func (r *PostgresRepository) GetMenuItems(ctx context.Context, ids []uuid.UUID) ([]domain.MenuItem, error) {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}
	return r.queryMenuItems(ctx, "SELECT "+menuColumns+" FROM menu_items WHERE id = ANY($1::uuid[])", pq.Array(keys))
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, m *domain.MenuItem) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, category = $4, is_available = $5,
			dietary_info = $6, image_url = $7, preparation_time = $8, updated_at = $9
		WHERE id = $10 AND kitchen_id = $11`,
		m.Name, m.Description, m.Price, m.Category, m.IsAvailable,
		m.DietaryInfo, m.ImageURL, m.PreparationTime, m.UpdatedAt, m.ID, m.KitchenID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, kitchenID, itemID uuid.UUID) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM menu_items WHERE id = $1 AND kitchen_id = $2", itemID, kitchenID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// CreateOrder stores the order and its items atomically; a failing item
// leaves no order behind.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	address, err := nullableJSON(order.DeliveryAddress)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO orders (id, reference, user_id, kitchen_id, status, total_amount, delivery_address,
			scheduled_time, special_instructions, payment_status, payment_method, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		order.ID, order.Reference, order.UserID, order.KitchenID, order.Status, order.TotalAmount, address,
		order.ScheduledTime, order.SpecialInstructions, order.PaymentStatus, order.PaymentMethod,
		order.CreatedAt, order.UpdatedAt); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, menu_item_id, quantity, price, special_instructions, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, order.ID, item.MenuItemID, item.Quantity, item.Price, item.SpecialInstructions, item.CreatedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID uuid.UUID, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

const orderColumns = `o.id, o.reference, o.user_id, o.kitchen_id, COALESCE(k.name, ''), o.status, o.total_amount,
	o.delivery_address, o.scheduled_time, COALESCE(o.special_instructions, ''), o.payment_status,
	o.payment_method, o.created_at, o.updated_at`

func scanOrder(row interface{ Scan(...interface{}) error }) (*domain.Order, error) {
	var o domain.Order
	var address []byte
	var scheduled sql.NullTime
	if err := row.Scan(&o.ID, &o.Reference, &o.UserID, &o.KitchenID, &o.KitchenName, &o.Status, &o.TotalAmount,
		&address, &scheduled, &o.SpecialInstructions, &o.PaymentStatus, &o.PaymentMethod,
		&o.CreatedAt, &o.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	if len(address) > 0 {
		o.DeliveryAddress = &domain.Address{}
		if err := json.Unmarshal(address, o.DeliveryAddress); err != nil {
			return nil, fmt.Errorf("decode delivery address: %w", err)
		}
	}
	if scheduled.Valid {
		o.ScheduledTime = &scheduled.Time
	}
	return &o, nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		LEFT JOIN kitchens k ON k.id = o.kitchen_id
		WHERE o.id = $1`, orderID))
	if err != nil {
		return nil, err
	}
	if order.Items, err = r.orderItems(ctx, order.ID); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *PostgresRepository) orderItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.menu_item_id, COALESCE(m.name, ''), oi.quantity, oi.price,
			COALESCE(oi.special_instructions, ''), oi.created_at
		FROM order_items oi
		LEFT JOIN menu_items m ON m.id = oi.menu_item_id
		WHERE oi.order_id = $1
		ORDER BY oi.created_at`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.MenuItemName, &item.Quantity,
			&item.Price, &item.SpecialInstructions, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		LEFT JOIN kitchens k ON k.id = o.kitchen_id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		orders = append(orders, *order)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].Items, err = r.orderItems(ctx, orders[i].ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2", status, orderID)
	if err != nil {
		return err
	}
	return requireRow(result, domain.ErrOrderNotFound)
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRowContext(ctx, "SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return qrCode, nil
}

func requireRow(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound
	}
	return nil
}

func nullableJSON(v *domain.Address) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}
