// Package repository holds the SQL behind the service layer.
package repository

import (
	"github.com/deppfellow/boardhub/internal/server"
)

// Repositories is the container handed to the service layer.
type Repositories struct {
	Member *MemberRepository
	Seeder *Seeder
}

func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Member: NewMemberRepository(s.DB.Pool),
		Seeder: NewSeeder(s.DB.Pool),
	}
}
