package cli

import (
	"strings"

	"github.com/alexanderramin/cps/internal/domain"
	"github.com/spf13/pflag"
)

// milestoneList is a repeatable --milestone flag collecting Name=Offset
// pairs in the order given.
type milestoneList []domain.Milestone

var _ pflag.Value = (*milestoneList)(nil)

func (l *milestoneList) Set(s string) error {
	m, err := domain.ParseMilestone(s)
	if err != nil {
		return err
	}
	*l = append(*l, m)
	return nil
}

func (l *milestoneList) String() string {
	parts := make([]string, len(*l))
	for i, m := range *l {
		parts[i] = m.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (l *milestoneList) Type() string {
	return "Name=Offset"
}
