package pgrepo

import (
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// collect сканирует все строки выборки функцией scan.
func collect[T any](rows pgx.Rows, scan func(rowScanner) (*T, error)) ([]T, error) {
	defer rows.Close()
	var result = make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return result, nil
}

// safeConvertIntToInt32 безопасно конвертирует int в int32. В случае выхода значения за рамки диапазона
// возвращает ошибку.
func safeConvertIntToInt32(val int) (int32, error) {
	if val > math.MaxInt32 || val < math.MinInt32 {
		return 0, fmt.Errorf("value is out of range: %d", val)
	}
	return int32(val), nil
}

// affected проверяет результат UPDATE/DELETE: если не затронута ни одна строка, возвращает
// domain.ErrRecordNotFound.
func affected(rows int64, err error, format string, formatArgs ...any) error {
	if err != nil {
		return convertErr(err, format, formatArgs...)
	}
	if rows == 0 {
		return convertErr(pgx.ErrNoRows, format, formatArgs...)
	}
	return nil
}
