package validate

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LineError - невалидная строка JSONL.
type LineError struct {
	Line int
	Err  error
}

// JSONLResult - результат разбора потока JSONL.
type JSONLResult struct {
	Changes []ParsedChange
	Invalid []LineError
}

// ReadStatusChanges читает JSONL со сменами статусов. Пустые строки
// пропускаются, невалидные попадают в Invalid и не прерывают чтение.
func ReadStatusChanges(r io.Reader) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if strings.TrimSpace(string(raw)) == "" {
			continue
		}
		change, err := ParseStatusChange(raw)
		if err != nil {
			res.Invalid = append(res.Invalid, LineError{Line: line, Err: err})
			continue
		}
		res.Changes = append(res.Changes, change)
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}
