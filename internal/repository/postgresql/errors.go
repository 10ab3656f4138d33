package postgresql

import "fmt"

func createQueryError(table string, err error) error {
	return fmt.Errorf("failed to create %s query: %w", table, err)
}

func executeQueryError(table string, err error) error {
	return fmt.Errorf("failed to execute %s query: %w", table, err)
}

func scanRowError(table string, err error) error {
	return fmt.Errorf("failed to scan %s row: %w", table, err)
}

func collectRowsError(table string, err error) error {
	return fmt.Errorf("failed to collect %s rows: %w", table, err)
}
