// Package chain hands jobs up a chain of mechanic skill groups until someone
// qualified and free takes them.
package chain

import "go.uber.org/zap"

type Job struct {
	Name         string
	MinimumSkill Skill
	Completed    bool
}

type Mechanic struct {
	Name  string
	Skill Skill
	Busy  bool
}

// PerformJob marks the mechanic busy and the job completed.
func (m *Mechanic) PerformJob(job *Job) bool {
	m.Busy = true
	job.Completed = true
	return true
}

// MechanicSkillGroup is one link of the chain.
type MechanicSkillGroup struct {
	Skill     Skill
	Mechanics []*Mechanic
	Next      *MechanicSkillGroup
}

func (g *MechanicSkillGroup) firstFree() *Mechanic {
	for _, m := range g.Mechanics {
		if !m.Busy {
			return m
		}
	}
	return nil
}

// PerformJobOrPassItUp gives the job to the first free mechanic of the group,
// or to the next group when the job needs more skill or everyone is busy.
// It returns false once the chain is exhausted.
func (g *MechanicSkillGroup) PerformJobOrPassItUp(job *Job) bool {
	for group := g; group != nil; group = group.Next {
		if job.MinimumSkill > group.Skill {
			continue
		}
		if m := group.firstFree(); m != nil {
			return m.PerformJob(job)
		}
	}
	return false
}

// Shop is the entry point of the chain.
type Shop struct {
	first *MechanicSkillGroup
	log   *zap.SugaredLogger
}

func NewShop(first *MechanicSkillGroup, log *zap.SugaredLogger) *Shop {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Shop{first: first, log: log}
}

func (s *Shop) PerformJob(job *Job) bool {
	if s.first != nil && s.first.PerformJobOrPassItUp(job) {
		s.log.Debugw("Job assigned", "job", job.Name)
		return true
	}
	s.log.Infow("No one is available to do this job", "job", job.Name, "minimumSkill", job.MinimumSkill)
	return false
}
