package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/comalice/storex/internal/patterns/chain"
)

func chainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chain",
		Short: "Pass jobs up a chain of skill groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runChain(cmd.OutOrStdout())
			return nil
		},
	}
}

func runChain(out io.Writer) {
	master := &chain.MechanicSkillGroup{Skill: chain.MasterMechanic, Mechanics: []*chain.Mechanic{
		{Name: "Linda Park", Skill: chain.MasterMechanic},
	}}
	apprentice := &chain.MechanicSkillGroup{Skill: chain.Apprentice, Next: master, Mechanics: []*chain.Mechanic{
		{Name: "Steve Brimington", Skill: chain.Apprentice},
		{Name: "Joe Murphy", Skill: chain.Apprentice},
	}}
	junior := &chain.MechanicSkillGroup{Skill: chain.Junior, Next: apprentice, Mechanics: []*chain.Mechanic{
		{Name: "Mike Fulton", Skill: chain.Junior},
	}}
	oil := &chain.MechanicSkillGroup{Skill: chain.OilChangeOnly, Next: junior, Mechanics: []*chain.Mechanic{
		{Name: "Tim Haas", Skill: chain.OilChangeOnly},
	}}
	shop := chain.NewShop(oil, log)

	jobs := []*chain.Job{
		{Name: "Oil change", MinimumSkill: chain.OilChangeOnly},
		{Name: "Tire rotation", MinimumSkill: chain.OilChangeOnly},
		{Name: "Brake pads", MinimumSkill: chain.Apprentice},
		{Name: "Timing belt", MinimumSkill: chain.MasterMechanic},
		{Name: "Transmission", MinimumSkill: chain.MasterMechanic},
	}
	for _, job := range jobs {
		fmt.Fprintf(out, "%-14s needs %-14v performed: %v\n", job.Name, job.MinimumSkill, shop.PerformJob(job))
	}
}
