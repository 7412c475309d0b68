package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bridgeremit/remit/internal/common"
	"github.com/bridgeremit/remit/internal/model"
)

// ListGiftPackages returns the catalog in seeded order.
func (s *Store) ListGiftPackages(ctx context.Context) ([]model.GiftPackage, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, title_am, description, description_am, price, icon, color,
			items, items_am, active
		 FROM gift_packages ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query gift packages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.GiftPackage
	for rows.Next() {
		pkg, err := scanGiftPackage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *pkg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate gift packages: %w", err)
	}
	return out, nil
}

// GetGiftPackage returns one catalog entry by ID.
func (s *Store) GetGiftPackage(ctx context.Context, id string) (*model.GiftPackage, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, title_am, description, description_am, price, icon, color,
			items, items_am, active
		 FROM gift_packages WHERE id = ?`, id)

	pkg, err := scanGiftPackage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("gift package %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gift package %s: %w", id, err)
	}
	return pkg, nil
}

// UpdateGiftPackage replaces the catalog entry matching the package ID.
func (s *Store) UpdateGiftPackage(ctx context.Context, pkg *model.GiftPackage) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if pkg == nil {
		return fmt.Errorf("%w: gift package", ErrNilParameter)
	}
	if err := pkg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	items, itemsAm, err := marshalItems(pkg)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE gift_packages
		 SET title = ?, title_am = ?, description = ?, description_am = ?, price = ?,
			icon = ?, color = ?, items = ?, items_am = ?, active = ?
		 WHERE id = ?`,
		pkg.Title, pkg.TitleAm, pkg.Description, pkg.DescriptionAm, pkg.Price.String(),
		pkg.Icon, pkg.Color, items, itemsAm, pkg.Active, pkg.ID)
	if err != nil {
		return fmt.Errorf("failed to update gift package %s: %w", pkg.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update gift package %s: %w", pkg.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("gift package %s: %w", pkg.ID, common.ErrNotFound)
	}
	return nil
}

func (s *Store) insertGiftPackage(ctx context.Context, pkg *model.GiftPackage) error {
	items, itemsAm, err := marshalItems(pkg)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO gift_packages (id, title, title_am, description, description_am,
			price, icon, color, items, items_am, active)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		pkg.ID, pkg.Title, pkg.TitleAm, pkg.Description, pkg.DescriptionAm,
		pkg.Price.String(), pkg.Icon, pkg.Color, items, itemsAm, pkg.Active); err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("gift package %s: %w", pkg.ID, common.ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to insert gift package %s: %w", pkg.ID, err)
	}
	return nil
}

func marshalItems(pkg *model.GiftPackage) (string, string, error) {
	items, err := json.Marshal(pkg.Items)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode items for %s: %w", pkg.ID, err)
	}
	itemsAm, err := json.Marshal(pkg.ItemsAm)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode items for %s: %w", pkg.ID, err)
	}
	return string(items), string(itemsAm), nil
}

func scanGiftPackage(row rowScanner) (*model.GiftPackage, error) {
	var (
		pkg            model.GiftPackage
		price          string
		items, itemsAm sql.NullString
	)
	if err := row.Scan(&pkg.ID, &pkg.Title, &pkg.TitleAm, &pkg.Description,
		&pkg.DescriptionAm, &price, &pkg.Icon, &pkg.Color, &items, &itemsAm,
		&pkg.Active); err != nil {
		return nil, err
	}

	var err error
	if pkg.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("corrupt price %q: %w", price, err)
	}
	if items.Valid && items.String != "" {
		if err := json.Unmarshal([]byte(items.String), &pkg.Items); err != nil {
			return nil, fmt.Errorf("corrupt items for %s: %w", pkg.ID, err)
		}
	}
	if itemsAm.Valid && itemsAm.String != "" {
		if err := json.Unmarshal([]byte(itemsAm.String), &pkg.ItemsAm); err != nil {
			return nil, fmt.Errorf("corrupt items for %s: %w", pkg.ID, err)
		}
	}
	return &pkg, nil
}
