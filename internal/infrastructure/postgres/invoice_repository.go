package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gemas-api/internal/domain"
	"github.com/jhoicas/Gemas-api/internal/domain/entity"
	"github.com/jhoicas/Gemas-api/internal/domain/repository"
	"github.com/jhoicas/Gemas-api/pkg/normalize"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre el Postgres de
// Supabase (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste cabecera y filas. Para atomicidad, construir el repo sobre
// una tx (ver TxRunner.RunInvoice).
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, invoice_number, date, party, transaction_type, source, sell_id, remarks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.InvoiceNumber, invoice.Date, invoice.Party,
		invoice.TransactionType, invoice.Source, nullIfEmpty(invoice.SellID),
		invoice.Remarks, invoice.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}

	rowQuery := `
		INSERT INTO invoice_rows (id, invoice_id, position, lot_name, description, shape, size, grade, pcs, cts, price, amount, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	for i, row := range invoice.Rows {
		var amount *decimal.Decimal
		if row.Amount.Valid {
			amount = &row.Amount.Decimal
		}
		if _, err := r.q.Exec(context.Background(), rowQuery,
			row.ID, invoice.ID, i, row.LotName, row.Description, row.Shape,
			row.Size, row.Grade, row.Pcs, row.Cts, row.Price, amount, row.Remarks,
		); err != nil {
			return fmt.Errorf("insert invoice row %d: %w", i, err)
		}
	}
	return nil
}

// GetByID obtiene una factura con sus filas; nil si no existe.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, invoice_number, date, party, transaction_type, source, COALESCE(sell_id, ''), remarks, created_at
		FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	rows, err := r.rowsByInvoice(inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Rows = rows
	return inv, nil
}

// List devuelve todas las facturas con filas en orden de inserción.
func (r *InvoiceRepo) List() ([]entity.Invoice, error) {
	query := `
		SELECT id, invoice_number, date, party, transaction_type, source, COALESCE(sell_id, ''), remarks, created_at
		FROM invoices ORDER BY created_at, invoice_number`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	invoices := []entity.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		invoices = append(invoices, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	for i := range invoices {
		items, err := r.rowsByInvoice(invoices[i].ID)
		if err != nil {
			return nil, err
		}
		invoices[i].Rows = items
	}
	return invoices, nil
}

// Count devuelve el total de facturas.
func (r *InvoiceRepo) Count() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM invoices`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

// Parties devuelve las contrapartes distintas, ordenadas.
func (r *InvoiceRepo) Parties() ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT DISTINCT party FROM invoices WHERE party <> '' ORDER BY party`)
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	defer rows.Close()

	parties := []string{}
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan party: %w", err)
		}
		parties = append(parties, p)
	}
	return parties, rows.Err()
}

func (r *InvoiceRepo) rowsByInvoice(invoiceID string) ([]entity.LineItem, error) {
	query := `
		SELECT id, lot_name, description, shape, size, grade, pcs, cts, price, amount, remarks
		FROM invoice_rows WHERE invoice_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice rows: %w", err)
	}
	defer rows.Close()

	items := []entity.LineItem{}
	for rows.Next() {
		var item entity.LineItem
		var amount *decimal.Decimal
		if err := rows.Scan(
			&item.ID, &item.LotName, &item.Description, &item.Shape, &item.Size,
			&item.Grade, &item.Pcs, &item.Cts, &item.Price, &amount, &item.Remarks,
		); err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		if amount != nil {
			item.Amount = decimal.NullDecimal{Decimal: *amount, Valid: true}
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var date time.Time
	if err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &date, &inv.Party, &inv.TransactionType,
		&inv.Source, &inv.SellID, &inv.Remarks, &inv.CreatedAt,
	); err != nil {
		return nil, err
	}
	inv.Date = date.Format(normalize.ISODate)
	return &inv, nil
}
