package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/blockbite/tokensale/internal/tokensale/domain"
	"github.com/blockbite/tokensale/internal/tokensale/store"
	"github.com/blockbite/tokensale/pkg/slogx"
)

// ReferralService assembles sponsor trees from the flat application set.
// Which shape a caller gets is decided by the program: pre-sale reports the
// direct referrals only, air-drop resolves the full subtree.
type ReferralService struct {
	Store   store.Store
	Program Program
}

// Referrals returns the referral structure rooted at publicID in the shape
// the program calls for.
func (s *ReferralService) Referrals(ctx context.Context, publicID string) (domain.ReferralNode, error) {
	log := slogx.FromContext(ctx)

	// 1. The root must exist.
	root, err := s.Store.Applications().GetApplicationByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ReferralNode{}, ErrApplicationNotFound
		}
		log.Error("failed to fetch application", slog.Any("error", err))
		return domain.ReferralNode{}, err
	}

	// 2. Scan the full set once and index children by sponsor.
	apps, err := s.Store.Applications().ListApplications(ctx)
	if err != nil {
		log.Error("failed to list applications", slog.Any("error", err))
		return domain.ReferralNode{}, err
	}

	children := make(map[string][]string, len(apps))
	for _, app := range apps {
		if app.Sponsor == "" {
			continue
		}
		children[app.Sponsor] = append(children[app.Sponsor], app.PublicID)
	}

	// 3. Assemble the requested shape.
	if !s.Program.RecursiveReferrals {
		node := domain.ReferralNode{
			PublicID:   root.PublicID,
			Referrents: []domain.ReferralNode{},
		}
		for _, child := range children[root.PublicID] {
			node.Referrents = append(node.Referrents, domain.ReferralNode{
				PublicID:   child,
				Referrents: []domain.ReferralNode{},
			})
		}
		return node, nil
	}

	visited := make(map[string]struct{}, len(apps))
	return buildSubtree(root.PublicID, children, visited), nil
}

// buildSubtree recursively expands the referral tree below publicID. The
// visited set breaks sponsor cycles, which the store does not forbid: a
// public ID already on the current path contributes a leaf, not a loop.
func buildSubtree(publicID string, children map[string][]string, visited map[string]struct{}) domain.ReferralNode {
	node := domain.ReferralNode{
		PublicID:   publicID,
		Referrents: []domain.ReferralNode{},
	}
	if _, ok := visited[publicID]; ok {
		return node
	}
	visited[publicID] = struct{}{}

	for _, child := range children[publicID] {
		node.Referrents = append(node.Referrents, buildSubtree(child, children, visited))
	}
	return node
}
