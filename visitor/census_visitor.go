package visitor

import (
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

var _ AnimalVisitor = (*CensusVisitor)(nil)

// Census counts the animals of a zoo by kind, names are kept in visiting order.
type Census struct {
	Lions  []string `json:"lions"`
	Tigers []string `json:"tigers"`
	Total  int      `json:"total"`
}

// CensusVisitor records every animal it visits into a Census.
type CensusVisitor struct {
	census  Census
	options *options
}

func NewCensusVisitor(opts ...Option) *CensusVisitor {
	return &CensusVisitor{
		census:  Census{Lions: []string{}, Tigers: []string{}},
		options: newOptions(opts...),
	}
}

func (v *CensusVisitor) VisitLion(lion *Lion) {
	v.census.Lions = append(v.census.Lions, lion.Name())
	v.census.Total++
	v.options.Logger.Debug("counted", zap.Stringer("kind", lion.Kind()), zap.String("name", lion.Name()))
}

func (v *CensusVisitor) VisitTiger(tiger *Tiger) {
	v.census.Tigers = append(v.census.Tigers, tiger.Name())
	v.census.Total++
	v.options.Logger.Debug("counted", zap.Stringer("kind", tiger.Kind()), zap.String("name", tiger.Name()))
}

// Census returns a copy of what was counted so far.
func (v *CensusVisitor) Census() Census {
	return Census{
		Lions:  slices.Clone(v.census.Lions),
		Tigers: slices.Clone(v.census.Tigers),
		Total:  v.census.Total,
	}
}

// JSON renders the census.
func (v *CensusVisitor) JSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(v.census)
}
