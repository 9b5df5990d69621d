package ledger

import (
	"errors"
	"math"
	"testing"
)

var tripMembers = []string{"Mahendra", "Namrata", "Ishmeet", "Meghana", "Unmesh", "Harish", "Swaroop"}

func TestComputeBalances(t *testing.T) {
	tests := []struct {
		name        string
		expenses    []ExpenseForBalance
		settlements []SettlementForBalance
		members     []string
		wantErr     error
		validate    func(t *testing.T, bal map[string]float64)
	}{
		{
			name:    "no activity yields zero for every member",
			members: tripMembers,
			validate: func(t *testing.T, bal map[string]float64) {
				if len(bal) != len(tripMembers) {
					t.Errorf("expected %d entries, got %d", len(tripMembers), len(bal))
				}
				for m, b := range bal {
					if b != 0 {
						t.Errorf("%s balance = %v, want 0", m, b)
					}
				}
			},
		},
		{
			name: "single expense split three ways",
			expenses: []ExpenseForBalance{
				{Amount: 300, PaidBy: "Mahendra", SplitAmong: []string{"Mahendra", "Namrata", "Ishmeet"}},
			},
			members: tripMembers,
			validate: func(t *testing.T, bal map[string]float64) {
				// Mahendra paid 300, owes 100 of it: +200
				if math.Abs(bal["Mahendra"]-200) > 0.01 {
					t.Errorf("Mahendra balance = %v, want 200", bal["Mahendra"])
				}
				for _, m := range []string{"Namrata", "Ishmeet"} {
					if math.Abs(bal[m]+100) > 0.01 {
						t.Errorf("%s balance = %v, want -100", m, bal[m])
					}
				}
				if bal["Meghana"] != 0 {
					t.Errorf("Meghana balance = %v, want 0", bal["Meghana"])
				}
			},
		},
		{
			name: "settlement cancels debt",
			expenses: []ExpenseForBalance{
				{Amount: 300, PaidBy: "Mahendra", SplitAmong: []string{"Mahendra", "Namrata", "Ishmeet"}},
			},
			settlements: []SettlementForBalance{
				{From: "Namrata", To: "Mahendra", Amount: 100},
			},
			members: tripMembers,
			validate: func(t *testing.T, bal map[string]float64) {
				if math.Abs(bal["Mahendra"]-100) > 0.01 {
					t.Errorf("Mahendra balance = %v, want 100", bal["Mahendra"])
				}
				if math.Abs(bal["Namrata"]) > 0.01 {
					t.Errorf("Namrata balance = %v, want 0", bal["Namrata"])
				}
				if math.Abs(bal["Ishmeet"]+100) > 0.01 {
					t.Errorf("Ishmeet balance = %v, want -100", bal["Ishmeet"])
				}
			},
		},
		{
			name: "payer outside split still credited in full",
			expenses: []ExpenseForBalance{
				{Amount: 100, PaidBy: "Harish", SplitAmong: []string{"Unmesh", "Swaroop"}},
			},
			members: tripMembers,
			validate: func(t *testing.T, bal map[string]float64) {
				if math.Abs(bal["Harish"]-100) > 0.01 {
					t.Errorf("Harish balance = %v, want 100", bal["Harish"])
				}
				if math.Abs(bal["Unmesh"]+50) > 0.01 {
					t.Errorf("Unmesh balance = %v, want -50", bal["Unmesh"])
				}
			},
		},
		{
			name: "empty split set rejected",
			expenses: []ExpenseForBalance{
				{Amount: 100, PaidBy: "Mahendra", SplitAmong: nil},
			},
			members: tripMembers,
			wantErr: ErrInvalidExpense,
		},
		{
			name: "non-positive amount rejected",
			expenses: []ExpenseForBalance{
				{Amount: 0, PaidBy: "Mahendra", SplitAmong: tripMembers},
			},
			members: tripMembers,
			wantErr: ErrInvalidExpense,
		},
		{
			name: "unknown payer rejected",
			expenses: []ExpenseForBalance{
				{Amount: 100, PaidBy: "Stranger", SplitAmong: []string{"Mahendra"}},
			},
			members: tripMembers,
			wantErr: ErrUnknownMember,
		},
		{
			name: "unknown split participant rejected",
			expenses: []ExpenseForBalance{
				{Amount: 100, PaidBy: "Mahendra", SplitAmong: []string{"Mahendra", "Stranger"}},
			},
			members: tripMembers,
			wantErr: ErrUnknownMember,
		},
		{
			name: "unknown settlement party rejected",
			settlements: []SettlementForBalance{
				{From: "Stranger", To: "Mahendra", Amount: 10},
			},
			members: tripMembers,
			wantErr: ErrUnknownMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bal, err := ComputeBalances(tt.expenses, tt.settlements, tt.members)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ComputeBalances() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ComputeBalances() unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, bal)
			}
		})
	}
}

func TestComputeBalancesZeroSum(t *testing.T) {
	expenses := []ExpenseForBalance{
		{Amount: 1000, PaidBy: "Mahendra", SplitAmong: tripMembers},
		{Amount: 333, PaidBy: "Namrata", SplitAmong: []string{"Namrata", "Ishmeet", "Meghana"}},
		{Amount: 77.5, PaidBy: "Swaroop", SplitAmong: []string{"Harish", "Unmesh"}},
		{Amount: 42, PaidBy: "Harish", SplitAmong: []string{"Harish"}},
	}
	settlements := []SettlementForBalance{
		{From: "Ishmeet", To: "Mahendra", Amount: 143},
		{From: "Unmesh", To: "Swaroop", Amount: 38},
	}

	bal, err := ComputeBalances(expenses, settlements, tripMembers)
	if err != nil {
		t.Fatalf("ComputeBalances() failed: %v", err)
	}

	var sum float64
	for _, b := range bal {
		sum += b
	}
	if math.Abs(sum) > 1e-9 {
		t.Errorf("balances sum to %v, want ~0", sum)
	}
}

func TestComputeBalancesIdempotent(t *testing.T) {
	expenses := []ExpenseForBalance{
		{Amount: 1000, PaidBy: "Mahendra", SplitAmong: tripMembers},
		{Amount: 450, PaidBy: "Meghana", SplitAmong: []string{"Meghana", "Harish", "Swaroop"}},
	}
	settlements := []SettlementForBalance{
		{From: "Harish", To: "Mahendra", Amount: 143},
	}

	first, err := ComputeBalances(expenses, settlements, tripMembers)
	if err != nil {
		t.Fatalf("first ComputeBalances() failed: %v", err)
	}
	second, err := ComputeBalances(expenses, settlements, tripMembers)
	if err != nil {
		t.Fatalf("second ComputeBalances() failed: %v", err)
	}

	for m, b := range first {
		if second[m] != b {
			t.Errorf("%s: first = %v, second = %v", m, b, second[m])
		}
	}
}
