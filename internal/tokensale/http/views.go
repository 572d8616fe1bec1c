package http

import (
	"github.com/blockbite/tokensale/internal/tokensale/domain"
	"github.com/blockbite/tokensale/pkg/salesdk"
)

func toApplicationView(v domain.View) salesdk.ApplicationView {
	return salesdk.ApplicationView{
		PrivateID:  v.PrivateID,
		PublicID:   v.PublicID,
		Email:      v.Email,
		Sponsor:    v.Sponsor,
		FirstName:  v.FirstName,
		LastName:   v.LastName,
		Country:    v.Country,
		EthAddress: v.EthAddress,
		Telegram:   v.Telegram,
		Twitter:    v.Twitter,
		TxHashes:   v.TxHashes,
		IsLocked:   v.IsLocked,
	}
}

func toAdminApplication(a domain.Application) salesdk.AdminApplication {
	return salesdk.AdminApplication{
		PrivateID:    a.PrivateID,
		PublicID:     a.PublicID,
		Email:        a.Email,
		Sponsor:      a.Sponsor,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Country:      a.Country,
		EthAddress:   a.EthAddress,
		Telegram:     a.Telegram,
		Twitter:      a.Twitter,
		TxHashes:     a.TxHashes,
		IsLocked:     a.IsLocked,
		LockDate:     a.LockDate,
		ReminderDate: a.ReminderDate,
		AcceptDate:   a.AcceptDate,
		RejectDate:   a.RejectDate,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toReferralNode(n domain.ReferralNode) salesdk.ReferralNode {
	node := salesdk.ReferralNode{
		PublicID:   n.PublicID,
		Referrents: make([]salesdk.ReferralNode, 0, len(n.Referrents)),
	}
	for _, child := range n.Referrents {
		node.Referrents = append(node.Referrents, toReferralNode(child))
	}
	return node
}

func toPatch(req salesdk.UpdateApplicationRequest) domain.Patch {
	return domain.Patch{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Country:    req.Country,
		EthAddress: req.EthAddress,
		Telegram:   req.Telegram,
		Twitter:    req.Twitter,
		Sponsor:    req.Sponsor,
	}
}
