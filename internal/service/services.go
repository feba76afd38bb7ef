// Package service holds the business rules between handlers and
// repositories.
package service

import (
	"github.com/deppfellow/boardhub/internal/lib/job"
	"github.com/deppfellow/boardhub/internal/repository"
	"github.com/deppfellow/boardhub/internal/server"
)

type Services struct {
	Auth   *AuthService
	Job    *job.JobService
	Member *MemberService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var jobs TaskEnqueuer
	if s.Job != nil {
		jobs = s.Job.Client
	}

	return &Services{
		Auth:   NewAuthService(s),
		Job:    s.Job,
		Member: NewMemberService(repos.Member, jobs),
	}, nil
}
