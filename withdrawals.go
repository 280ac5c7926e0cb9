package ledgerdocs

import (
	"fmt"

	"github.com/etnz/ledgerdocs/date"
	"github.com/shopspring/decimal"
)

const (
	planName       = "ACME CORP 401(K) PROFIT SHARING PLAN"
	companyName    = "ACME Corp"
	companyAddress = "123 Business Rd, Tech City, CA 90210"
	hrRep          = "Sarah Connor"
)

// withdrawalFee is the flat processing fee deducted from the payout.
var withdrawalFee = M(50, DefaultCurrency)

// fundWeights splits an account balance across the plan's named
// investment funds. Order matters: the last fund absorbs rounding.
var fundWeights = []Weight{
	W("Vanguard Target Retirement 2050", 0.6),
	W("S&P 500 Index Fund", 0.3),
	W("International Growth Fund", 0.1),
}

// sourceWeights splits an account balance across funding sources.
var sourceWeights = []Weight{
	W("Employee Deferral", 0.66),
	W("Employer Match", 0.34),
}

// positionWeights decomposes one bucket's balance into its beginning
// balance, deposits, and gains.
var positionWeights = []Weight{
	W("beg", 0.9),
	W("deposits", 0.05),
	W("gains", 0.05),
}

// FundPosition is one investment fund's row on a withdrawal statement.
// Under full liquidation the withdrawal equals the entire fund balance and
// the ending balance is zero.
type FundPosition struct {
	Name        string
	Beg         Money
	Deposits    Money
	Gains       Money
	Transfers   Money
	Withdrawals Money
	End         Money
	Units       decimal.Decimal
}

func (p FundPosition) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("name", p.Name).
		Append("beg_bal", p.Beg.Display()).
		Append("deposits", p.Deposits.Display()).
		Append("gains", p.Gains.Display()).
		Append("transfers", p.Transfers.Display()).
		Append("withdrawals", p.Withdrawals.Display()).
		Append("end_bal", p.End.Display()).
		Append("units", p.Units.StringFixed(3))
	return w.MarshalJSON()
}

// SourcePosition is one funding source's row on a withdrawal statement.
type SourcePosition struct {
	Name        string
	Beg         Money
	Deposits    Money
	Gains       Money
	Withdrawals Money
	End         Money
	PctVested   string
	VestedBal   Money
}

func (p SourcePosition) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("name", p.Name).
		Append("beg_bal", p.Beg.Display()).
		Append("deposits", p.Deposits.Display()).
		Append("gains", p.Gains.Display()).
		Append("withdrawals", p.Withdrawals.Display()).
		Append("end_bal", p.End.Display()).
		Optional("pct_vested", p.PctVested).
		Append("vested_bal", p.VestedBal.Display())
	return w.MarshalJSON()
}

// EmployeeAccount is the synthesized 401(k) account state for one employee
// at the moment of full liquidation: the balance decomposed by fund and by
// funding source, every bucket's ending balance forced to zero, and the
// entire bucket balance tagged as a withdrawal.
//
// Per-bucket invariant: Beg + Deposits + Gains + Withdrawals == 0 (the
// withdrawal carries a negative sign, money leaving the account).
type EmployeeAccount struct {
	PriorYearBal Money
	YTDEmployee  Money // employee deferrals this year
	YTDEmployer  Money // employer match this year
	Gains        Money
	Balance      Money

	Funds     []FundPosition
	FundTotal FundPosition

	Sources     []SourcePosition
	SourceTotal SourcePosition

	Fee       Money
	NetPayout Money
}

// LiquidateAccount synthesizes the account state for one employee from
// salary and contribution rate, then fully liquidates it. The allocation
// reconciler is applied twice, across funds and then across funding
// sources, so both decompositions sum to the balance exactly.
func LiquidateAccount(emp EmployeeRecord, synth *Synth) (EmployeeAccount, error) {
	salary := M(emp.AnnualSalary, DefaultCurrency)

	// Balance simulation anchored on compensation.
	prior := salary.MulShare(decimal.NewFromFloat(synth.FloatBetween(0.5, 2.0)))
	contribution := emp.ContributionPct.Div(decimal.NewFromInt(100))
	ytdEmp := salary.MulShare(contribution.Mul(decimal.NewFromFloat(0.75)))
	ytdEr := ytdEmp.MulShare(decimal.NewFromFloat(0.5)) // 50% match
	gains := prior.Add(ytdEmp).MulShare(decimal.NewFromFloat(synth.FloatBetween(0.03, 0.08)))
	balance := prior.Add(ytdEmp).Add(ytdEr).Add(gains)

	account := EmployeeAccount{
		PriorYearBal: prior,
		YTDEmployee:  ytdEmp,
		YTDEmployer:  ytdEr,
		Gains:        gains,
		Balance:      balance,
		Fee:          withdrawalFee,
		NetPayout:    balance.Sub(withdrawalFee),
	}

	// Fund breakdown.
	fundShares, err := Allocate(balance, fundWeights)
	if err != nil {
		return EmployeeAccount{}, fmt.Errorf("fund split for %q: %w", emp.ID, err)
	}
	zero := M(0, DefaultCurrency)
	total := FundPosition{Beg: zero, Deposits: zero, Gains: zero, Transfers: zero, Withdrawals: zero, End: zero}
	for _, share := range fundShares {
		parts, err := Allocate(share.Amount, positionWeights)
		if err != nil {
			return EmployeeAccount{}, fmt.Errorf("fund position for %q: %w", emp.ID, err)
		}
		p := FundPosition{
			Name:        share.Name,
			Beg:         parts[0].Amount,
			Deposits:    parts[1].Amount,
			Gains:       parts[2].Amount,
			Transfers:   zero,
			Withdrawals: share.Amount.Neg(), // the entire balance leaves
			End:         zero,
		}
		account.Funds = append(account.Funds, p)
		total.Beg = total.Beg.Add(p.Beg)
		total.Deposits = total.Deposits.Add(p.Deposits)
		total.Gains = total.Gains.Add(p.Gains)
		total.Withdrawals = total.Withdrawals.Add(p.Withdrawals)
	}
	account.FundTotal = total

	// Funding source breakdown: beginning balances and gains are split
	// with the same reconciler, deposits are the known YTD contributions.
	begShares, err := Allocate(prior, sourceWeights)
	if err != nil {
		return EmployeeAccount{}, fmt.Errorf("source split for %q: %w", emp.ID, err)
	}
	gainShares, err := Allocate(gains, sourceWeights)
	if err != nil {
		return EmployeeAccount{}, fmt.Errorf("source gains split for %q: %w", emp.ID, err)
	}
	deposits := []Money{ytdEmp, ytdEr}
	srcTotal := SourcePosition{Beg: zero, Deposits: zero, Gains: zero, Withdrawals: zero, End: zero, VestedBal: zero}
	for i := range sourceWeights {
		gross := begShares[i].Amount.Add(deposits[i]).Add(gainShares[i].Amount)
		p := SourcePosition{
			Name:        sourceWeights[i].Name,
			Beg:         begShares[i].Amount,
			Deposits:    deposits[i],
			Gains:       gainShares[i].Amount,
			Withdrawals: gross.Neg(),
			End:         zero,
			PctVested:   "100%",
			VestedBal:   zero,
		}
		account.Sources = append(account.Sources, p)
		srcTotal.Beg = srcTotal.Beg.Add(p.Beg)
		srcTotal.Deposits = srcTotal.Deposits.Add(p.Deposits)
		srcTotal.Gains = srcTotal.Gains.Add(p.Gains)
		srcTotal.Withdrawals = srcTotal.Withdrawals.Add(p.Withdrawals)
	}
	account.SourceTotal = srcTotal

	return account, nil
}

// ActivityEntry is one row of the statement's activity ledger. Only the
// processing fee appears there.
type ActivityEntry struct {
	Desc   string    `json:"desc"`
	Date   date.Date `json:"date"`
	Amount string    `json:"amount"`
}

// HistoryRow is one row of the statement's history table.
type HistoryRow struct {
	Employee string `json:"employee"`
	Employer string `json:"employer"`
	Total    string `json:"total"`
}

// WithdrawalData carries every field the withdrawal form and statement
// templates consume.
type WithdrawalData struct {
	PlanName        string `json:"plan_name"`
	ParticipantName string `json:"participant_name"`
	ParticipantID   string `json:"participant_id"`
	Address         string `json:"address"`
	City            string `json:"city"`
	State           string `json:"state"`
	Zip             string `json:"zip"`
	SSN             string `json:"ssn"`
	DOB             string `json:"dob"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	LocationCode    string `json:"location_code"`
	USCitizen       bool   `json:"is_us_citizen"`

	ConfirmationNum string    `json:"confirmation_num"`
	AuthDate        date.Date `json:"auth_date"`
	SepDate         date.Date `json:"sep_date"`
	WithdrawalFee   string    `json:"withdrawal_fee"`
	EstNetPayout    string    `json:"est_net_payout"`
	GrossWithdrawal string    `json:"gross_withdrawal_amount"`

	AccountID        string `json:"account_id"`
	ContributionRate string `json:"contribution_rate"`

	Investments []FundPosition   `json:"investments"`
	InvTotal    FundPosition     `json:"inv_total"`
	Sources     []SourcePosition `json:"sources"`
	SrcTotal    SourcePosition   `json:"src_total"`

	History struct {
		YTDWithdrawals HistoryRow `json:"ytd_withdrawals"`
		PrevYearBal    HistoryRow `json:"prev_year_bal"`
	} `json:"history"`

	Activity      []ActivityEntry `json:"activity"`
	ActivityTotal string          `json:"activity_total"`
}

// WithdrawalDoc is the combined statement + withdrawal form packet for one
// employee. The liquidated account is carried along, unserialized, so the
// tax form derivation can reuse the exact balance instead of reparsing
// display strings.
type WithdrawalDoc struct {
	ID      string          `json:"document_id"`
	Data    WithdrawalData  `json:"data"`
	Account EmployeeAccount `json:"-"`
}

// AssembleWithdrawal derives the withdrawal packet for one employee,
// assuming the withdrawal happens upon separation. asOf anchors the
// synthetic separation date (5 to 30 days back).
func AssembleWithdrawal(emp EmployeeRecord, asOf date.Date) (WithdrawalDoc, date.Date, error) {
	synth := NewSynth(emp.ID)

	sepDate := asOf.Add(-synth.IntBetween(5, 30))
	account, err := LiquidateAccount(emp, synth)
	if err != nil {
		return WithdrawalDoc{}, date.Date{}, err
	}

	data := WithdrawalData{
		PlanName:        planName,
		ParticipantName: emp.FullName,
		ParticipantID:   emp.ID,
		Address:         emp.Address.Street,
		City:            emp.Address.City,
		State:           emp.Address.State,
		Zip:             emp.Address.Zip,
		SSN:             emp.SSN,
		DOB:             emp.DOB,
		Phone:           synth.PhoneNumber(),
		Email:           emp.WorkEmail,
		LocationCode:    synth.LocationCode(),
		USCitizen:       emp.USCitizen,

		ConfirmationNum: synth.ConfirmationNumber(),
		AuthDate:        sepDate.Add(-2),
		SepDate:         sepDate,
		WithdrawalFee:   account.Fee.Display(),
		EstNetPayout:    account.NetPayout.Display(),
		GrossWithdrawal: account.Balance.Display(),

		AccountID:        synth.AccountNumber(),
		ContributionRate: emp.ContributionPct.String() + "%",

		Investments: account.Funds,
		InvTotal:    account.FundTotal,
		Sources:     account.Sources,
		SrcTotal:    account.SourceTotal,

		Activity: []ActivityEntry{
			{Desc: "Withdrawal Fee", Date: sepDate, Amount: "-" + account.Fee.Display()},
		},
		ActivityTotal: account.Fee.Neg().Display(),
	}

	zero := M(0, DefaultCurrency)
	data.History.YTDWithdrawals = HistoryRow{
		Employee: zero.Display(), Employer: zero.Display(), Total: zero.Display(),
	}
	data.History.PrevYearBal = HistoryRow{
		Employee: account.Sources[0].Beg.Display(),
		Employer: account.Sources[1].Beg.Display(),
		Total:    account.PriorYearBal.Display(),
	}

	return WithdrawalDoc{ID: "401K-" + emp.ID, Data: data, Account: account}, sepDate, nil
}

// SeparationReason classifies a separation letter.
type SeparationReason string

const (
	ReasonResignation SeparationReason = "resignation"
	ReasonSeparation  SeparationReason = "separation"
	ReasonDeath       SeparationReason = "death"
)

var separationReasons = []string{
	string(ReasonResignation),
	string(ReasonSeparation),
	string(ReasonDeath),
}

// separationOutcome decides whether a separation letter is generated for
// the employee, and for which reason.
//
// An authoritative non-Active status always produces a letter. When the
// source carries no status at all, a seeded draw stands in (about 40% of
// records): this is a placeholder business rule pending an authoritative
// separation flag upstream, kept in one place so it can be replaced.
func separationOutcome(emp EmployeeRecord, synth *Synth) (SeparationReason, bool) {
	separating := synth.IntBetween(1, 5) <= 2 // placeholder draw, ~40%
	if emp.Status != "" {
		separating = emp.Status != StatusActive
	}
	if !separating {
		return "", false
	}
	return SeparationReason(synth.pick(separationReasons)), true
}

// LetterData carries the fields the separation letter templates consume.
type LetterData struct {
	EmployeeName    string    `json:"employee_name"`
	EmpAddress      string    `json:"emp_address"`
	EmpCityStateZip string    `json:"emp_city_state_zip"`
	Date            string    `json:"date"`
	CompanyName     string    `json:"company_name"`
	CompanyAddress  string    `json:"company_address"`
	SepDate         date.Date `json:"sep_date"`
	HRRep           string    `json:"hr_rep"`
	State           string    `json:"state,omitempty"` // governing law, separation agreements only
}

// Letter is one separation letter document.
type Letter struct {
	ID     string           `json:"document_id"`
	Reason SeparationReason `json:"-"`
	Data   LetterData       `json:"data"`
}

var letterPrefixes = map[SeparationReason]string{
	ReasonResignation: "RESIGN-",
	ReasonSeparation:  "SEP-",
	ReasonDeath:       "DEATH-",
}

// AssembleLetter derives the separation letter for one employee.
func AssembleLetter(emp EmployeeRecord, reason SeparationReason, sepDate, runDate date.Date) Letter {
	data := LetterData{
		EmployeeName:    emp.FullName,
		EmpAddress:      emp.Address.Street,
		EmpCityStateZip: fmt.Sprintf("%s, %s %s", emp.Address.City, emp.Address.State, emp.Address.Zip),
		Date:            runDate.Format("January 02, 2006"),
		CompanyName:     companyName,
		CompanyAddress:  companyAddress,
		SepDate:         sepDate,
		HRRep:           hrRep,
	}
	if reason == ReasonSeparation {
		data.State = emp.Address.State
	}
	return Letter{
		ID:     letterPrefixes[reason] + emp.ID,
		Reason: reason,
		Data:   data,
	}
}
