package builders

import (
	"fmt"

	"github.com/rushteam/alkit/config"
	"github.com/rushteam/alkit/pkg/conv"
	"github.com/rushteam/alkit/utility"
)

func init() {
	config.Register("uncertainty", BuildUncertainty)
	config.Register("margin", BuildMargin)
	config.Register("entropy", BuildEntropy)
	config.Register("expr", BuildExpr)
	config.Register("linear", BuildLinearCombination)
	config.Register("product", BuildProduct)
}

func BuildUncertainty(_ *utility.MeasureFactory, _ map[string]any) (utility.Measure, error) {
	return utility.Uncertainty{}, nil
}

func BuildMargin(_ *utility.MeasureFactory, _ map[string]any) (utility.Measure, error) {
	return utility.Margin{}, nil
}

func BuildEntropy(_ *utility.MeasureFactory, _ map[string]any) (utility.Measure, error) {
	return utility.Entropy{}, nil
}

func BuildExpr(_ *utility.MeasureFactory, cfg map[string]any) (utility.Measure, error) {
	expr := conv.ConfigGet(cfg, "expr", "")
	if expr == "" {
		return nil, fmt.Errorf("expr not found")
	}
	return utility.NewExpr(conv.ConfigGet(cfg, "name", ""), expr)
}

func BuildLinearCombination(f *utility.MeasureFactory, cfg map[string]any) (utility.Measure, error) {
	measures, err := buildChildren(f, cfg)
	if err != nil {
		return nil, err
	}
	weights, ok := conv.SliceAnyToFloat64(cfg["weights"])
	if !ok {
		return nil, fmt.Errorf("weights not found or invalid")
	}
	return utility.NewLinearCombination(measures, weights)
}

func BuildProduct(f *utility.MeasureFactory, cfg map[string]any) (utility.Measure, error) {
	measures, err := buildChildren(f, cfg)
	if err != nil {
		return nil, err
	}
	exponents, ok := conv.SliceAnyToFloat64(cfg["exponents"])
	if !ok {
		return nil, fmt.Errorf("exponents not found or invalid")
	}
	return utility.NewProduct(measures, exponents)
}

func buildChildren(f *utility.MeasureFactory, cfg map[string]any) ([]utility.Measure, error) {
	raw, ok := cfg["measures"].([]any)
	if !ok {
		return nil, fmt.Errorf("measures not found or invalid")
	}
	measures := make([]utility.Measure, 0, len(raw))
	for i, r := range raw {
		mc, err := utility.ParseMeasureConfig(r)
		if err != nil {
			return nil, fmt.Errorf("measures[%d]: %w", i, err)
		}
		m, err := f.BuildConfig(mc)
		if err != nil {
			return nil, fmt.Errorf("measures[%d]: %w", i, err)
		}
		measures = append(measures, m)
	}
	return measures, nil
}
