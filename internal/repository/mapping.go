package repository

import (
	"github.com/raffleworks/crypto-raffle-api/internal/domain"
	"github.com/raffleworks/crypto-raffle-api/internal/repository/dao"
)

func raffleDomainToDAO(r domain.Raffle) dao.Raffle {
	return dao.Raffle{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		WalletAddress:   r.WalletAddress,
		PrizePool:       r.PrizePool,
		EntryFee:        r.EntryFee,
		TotalSpots:      r.TotalSpots,
		MaxPerWallet:    r.MaxPerWallet,
		EndTime:         r.EndTime,
		CreatedAt:       r.CreatedAt,
		Status:          r.Status,
		Winner:          r.Winner,
		WinnerAvatar:    r.WinnerAvatar,
		CompletedAt:     r.CompletedAt,
		WinnerDrawnAt:   r.WinnerDrawnAt,
		AutoDrawEnabled: r.AutoDrawEnabled,
	}
}

func raffleDAOToDomain(r dao.Raffle) domain.Raffle {
	return domain.Raffle{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		WalletAddress:   r.WalletAddress,
		PrizePool:       r.PrizePool,
		EntryFee:        r.EntryFee,
		TotalSpots:      r.TotalSpots,
		MaxPerWallet:    r.MaxPerWallet,
		EndTime:         r.EndTime,
		CreatedAt:       r.CreatedAt,
		Status:          r.Status,
		Winner:          r.Winner,
		WinnerAvatar:    r.WinnerAvatar,
		CompletedAt:     r.CompletedAt,
		WinnerDrawnAt:   r.WinnerDrawnAt,
		AutoDrawEnabled: r.AutoDrawEnabled,
	}
}

func rafflesDAOToDomain(raffles []dao.Raffle) []domain.Raffle {
	result := make([]domain.Raffle, len(raffles))
	for i, r := range raffles {
		result[i] = raffleDAOToDomain(r)
	}
	return result
}

func participantDomainToDAO(p domain.Participant) dao.Participant {
	return dao.Participant{
		ID:        p.ID,
		RaffleID:  p.RaffleID,
		Address:   p.Address,
		Entries:   p.Entries,
		Avatar:    p.Avatar,
		Timestamp: p.Timestamp,
		TxHash:    p.TxHash,
	}
}

func participantDAOToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		ID:        p.ID,
		RaffleID:  p.RaffleID,
		Address:   p.Address,
		Entries:   p.Entries,
		Avatar:    p.Avatar,
		Timestamp: p.Timestamp,
		TxHash:    p.TxHash,
	}
}

func participantsDAOToDomain(participants []dao.Participant) []domain.Participant {
	result := make([]domain.Participant, len(participants))
	for i, p := range participants {
		result[i] = participantDAOToDomain(p)
	}
	return result
}

func transactionDomainToDAO(t domain.Transaction) dao.Transaction {
	return dao.Transaction{
		ID:          t.ID,
		RaffleID:    t.RaffleID,
		FromAddress: t.From,
		Amount:      t.Amount,
		Timestamp:   t.Timestamp,
		TxHash:      t.TxHash,
	}
}

func transactionDAOToDomain(t dao.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:        t.ID,
		RaffleID:  t.RaffleID,
		From:      t.FromAddress,
		Amount:    t.Amount,
		Timestamp: t.Timestamp,
		TxHash:    t.TxHash,
	}
}

func transactionsDAOToDomain(transactions []dao.Transaction) []domain.Transaction {
	result := make([]domain.Transaction, len(transactions))
	for i, t := range transactions {
		result[i] = transactionDAOToDomain(t)
	}
	return result
}

func paymentDomainToDAO(p domain.WinnerPayment) dao.WinnerPayment {
	return dao.WinnerPayment{
		ID:                p.ID,
		RaffleID:          p.RaffleID,
		RaffleTitle:       p.RaffleTitle,
		WinnerAddress:     p.WinnerAddress,
		PrizeAmount:       p.PrizeAmount,
		DrawnAt:           p.DrawnAt,
		PaymentStatus:     p.PaymentStatus,
		PaidAt:            p.PaidAt,
		ParticipantNumber: p.ParticipantNumber,
		TotalParticipants: p.TotalParticipants,
	}
}

func paymentDAOToDomain(p dao.WinnerPayment) domain.WinnerPayment {
	return domain.WinnerPayment{
		ID:                p.ID,
		RaffleID:          p.RaffleID,
		RaffleTitle:       p.RaffleTitle,
		WinnerAddress:     p.WinnerAddress,
		PrizeAmount:       p.PrizeAmount,
		DrawnAt:           p.DrawnAt,
		PaymentStatus:     p.PaymentStatus,
		PaidAt:            p.PaidAt,
		ParticipantNumber: p.ParticipantNumber,
		TotalParticipants: p.TotalParticipants,
	}
}

func paymentsDAOToDomain(payments []dao.WinnerPayment) []domain.WinnerPayment {
	result := make([]domain.WinnerPayment, len(payments))
	for i, p := range payments {
		result[i] = paymentDAOToDomain(p)
	}
	return result
}
