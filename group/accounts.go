package group

import "github.com/binaryking/mifosx-api/internal/codec"

// AccountsSummary is the overview of the loan and savings accounts held by
// a group and by its member clients.
type AccountsSummary struct {
	LoanAccounts          []*Account
	SavingsAccounts       []*Account
	MemberLoanAccounts    []*Account
	MemberSavingsAccounts []*Account
}

// Account is one loan or savings account entry of an accounts summary.
type Account struct {
	ID          *int64
	AccountNo   *string
	ExternalID  *string
	ProductID   *int64
	ProductName *string
	Status      *Status
}

func decodeAccountsSummary(obj codec.Object) *AccountsSummary {
	summary := &AccountsSummary{}

	sections := []struct {
		key    string
		target *[]*Account
	}{
		{"loanAccounts", &summary.LoanAccounts},
		{"savingsAccounts", &summary.SavingsAccounts},
		{"memberLoanAccounts", &summary.MemberLoanAccounts},
		{"memberSavingsAccounts", &summary.MemberSavingsAccounts},
	}
	for _, s := range sections {
		items, ok := obj.Objects(s.key)
		if !ok {
			continue
		}
		accounts := make([]*Account, 0, len(items))
		for _, item := range items {
			accounts = append(accounts, decodeAccount(item))
		}
		*s.target = accounts
	}
	return summary
}

func decodeAccount(obj codec.Object) *Account {
	account := &Account{}
	account.ID = int64Ptr(obj, "id")
	account.AccountNo = stringPtr(obj, "accountNo")
	account.ExternalID = stringPtr(obj, "externalId")
	account.ProductID = int64Ptr(obj, "productId")
	account.ProductName = stringPtr(obj, "productName")
	if statusObj, ok := obj.Child("status"); ok {
		account.Status = decodeStatus(statusObj)
	}
	return account
}
