// Package matio 读写 CSV 格式的数值矩阵（Pool、概率表）。
package matio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ReadCSVFile 读取 CSV 文件为矩阵，见 ReadCSV。
func ReadCSVFile(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV 读取无表头的数值 CSV，每行一个实例。以 '#' 开头的行视为注释。
func ReadCSV(r io.Reader) (*mat.Dense, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	var (
		data []float64
		rows int
		cols = -1
	)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if cols < 0 {
			cols = len(rec)
		}
		// csv.Reader 已校验每行字段数一致（FieldsPerRecord 默认为首行字段数）
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", rows, j, err)
			}
			data = append(data, v)
		}
		rows++
	}
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("read csv: no data")
	}
	return mat.NewDense(rows, cols, data), nil
}

// WriteColumn 把一列数值逐行写出。
func WriteColumn(w io.Writer, values []float64) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(w, strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			return err
		}
	}
	return nil
}
