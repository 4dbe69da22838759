package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
	"github.com/jhoicas/Quickcart-api/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo implementación del puerto BillRepository sobre PostgreSQL. Las
// líneas de la factura se guardan como JSONB: son una instantánea congelada,
// nunca se consultan por separado.
type BillRepo struct {
	pool *pgxpool.Pool
}

// NewBillRepository construye el adaptador de facturación.
func NewBillRepository(pool *pgxpool.Pool) *BillRepo {
	return &BillRepo{pool: pool}
}

// Save persiste la factura congelada.
func (r *BillRepo) Save(bill *entity.Bill) error {
	items, err := json.Marshal(bill.Items)
	if err != nil {
		return fmt.Errorf("serializar líneas: %w", err)
	}
	query := `
		INSERT INTO bills (id, customer_uid, mall_name, items, total_items, subtotal, total_tax, total, payment_status, verification_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.pool.Exec(context.Background(), query,
		bill.ID, bill.CustomerUID, bill.MallName, items, bill.TotalItems,
		bill.Subtotal, bill.TotalTax, bill.Total,
		bill.PaymentStatus, bill.VerificationStatus, bill.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

const billColumns = `id, customer_uid, mall_name, items, total_items, subtotal, total_tax, total, payment_status, verification_status, created_at`

// GetByID obtiene la factura por id, (nil, nil) si no existe.
func (r *BillRepo) GetByID(id string) (*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE id = $1`
	row := r.pool.QueryRow(context.Background(), query, id)
	bill, err := scanBill(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return bill, nil
}

// ListByCustomer historial de facturas del cliente, más recientes primero.
func (r *BillRepo) ListByCustomer(customerUID string, limit, offset int) ([]*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE customer_uid = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, customerUID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()

	var bills []*entity.Bill
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		bills = append(bills, bill)
	}
	return bills, rows.Err()
}

// SetVerification actualiza el estado de verificación de la factura.
func (r *BillRepo) SetVerification(billID, verificationStatus string) error {
	query := `UPDATE bills SET verification_status = $2 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, billID, verificationStatus)
	if err != nil {
		return fmt.Errorf("update verification: %w", err)
	}
	return nil
}

// SaveVerification persiste el registro de verificación en puerta.
func (r *BillRepo) SaveVerification(record *entity.VerificationRecord) error {
	query := `
		INSERT INTO verifications (id, bill_id, guard_uid, status, note, ts, item_count, total_amount, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		record.ID, record.BillID, record.GuardUID, record.Status, record.Note,
		record.Timestamp, record.ItemCount, record.TotalAmount, record.PaymentStatus,
	)
	if err != nil {
		return fmt.Errorf("insert verification: %w", err)
	}
	return nil
}

// ListVerifications historial de verificaciones, más recientes primero.
func (r *BillRepo) ListVerifications(limit, offset int) ([]*entity.VerificationRecord, error) {
	query := `
		SELECT id, bill_id, guard_uid, status, note, ts, item_count, total_amount, payment_status
		FROM verifications ORDER BY ts DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list verifications: %w", err)
	}
	defer rows.Close()

	var records []*entity.VerificationRecord
	for rows.Next() {
		var rec entity.VerificationRecord
		if err := rows.Scan(&rec.ID, &rec.BillID, &rec.GuardUID, &rec.Status, &rec.Note,
			&rec.Timestamp, &rec.ItemCount, &rec.TotalAmount, &rec.PaymentStatus); err != nil {
			return nil, fmt.Errorf("scan verification: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// Stats agregados del panel: ingresos, transacciones y clientes distintos
// sobre facturas pagadas. PeakHour lo decide la capa de aplicación.
func (r *BillRepo) Stats() (*entity.DashboardStats, error) {
	query := `
		SELECT COALESCE(SUM(total), 0), COUNT(*), COUNT(DISTINCT customer_uid)
		FROM bills WHERE payment_status = 'paid'`
	var stats entity.DashboardStats
	err := r.pool.QueryRow(context.Background(), query).Scan(
		&stats.TotalRevenue, &stats.TransactionCount, &stats.ActiveUsers,
	)
	if err != nil {
		return nil, fmt.Errorf("bill stats: %w", err)
	}
	return &stats, nil
}

func scanBill(row rowScanner) (*entity.Bill, error) {
	var b entity.Bill
	var items []byte
	err := row.Scan(&b.ID, &b.CustomerUID, &b.MallName, &items, &b.TotalItems,
		&b.Subtotal, &b.TotalTax, &b.Total, &b.PaymentStatus, &b.VerificationStatus, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &b.Items); err != nil {
		return nil, fmt.Errorf("deserializar líneas: %w", err)
	}
	return &b, nil
}
