package sqlconfig

import "context"

// CurrenciesTable provides access to the currencies reference table.
type CurrenciesTable struct {
	exec Querier
}

var _ ICurrencyTable = (*CurrenciesTable)(nil)

// NewCurrenciesTable creates a CurrenciesTable over the given executor.
func NewCurrenciesTable(exec Querier) *CurrenciesTable {
	return &CurrenciesTable{exec: exec}
}

// Insert creates a new currency. A duplicate code surfaces as a ConflictError.
func (t *CurrenciesTable) Insert(ctx context.Context, create *CurrencyCreate) (*Currency, error) {
	row := t.exec.QueryRowContext(ctx,
		`INSERT INTO currencies (code, name)
		 VALUES ($1, $2)
		 RETURNING id, code, name`,
		create.Code, create.Name,
	)
	currency, err := scanCurrency(row)
	if err != nil {
		return nil, translateInsertError(err, "currency", create.Code, 0)
	}
	return currency, nil
}

// FindByID retrieves a currency by primary key.
func (t *CurrenciesTable) FindByID(ctx context.Context, id int64) (*Currency, error) {
	row := t.exec.QueryRowContext(ctx,
		`SELECT id, code, name FROM currencies WHERE id = $1`, id)
	currency, err := scanCurrency(row)
	if err != nil {
		return nil, translateFindError(err, "currency", id)
	}
	return currency, nil
}

// List returns all currencies.
func (t *CurrenciesTable) List(ctx context.Context) ([]*Currency, error) {
	rows, err := t.exec.QueryContext(ctx,
		`SELECT id, code, name FROM currencies ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Currency
	for rows.Next() {
		currency, err := scanCurrency(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, currency)
	}
	return result, rows.Err()
}

func scanCurrency(row rowScanner) (*Currency, error) {
	var currency Currency
	if err := row.Scan(&currency.ID, &currency.Code, &currency.Name); err != nil {
		return nil, err
	}
	return &currency, nil
}
