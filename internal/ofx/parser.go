// Package ofx imports OFX/QFX bank and card statements as expenses.
package ofx

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/Veraticus/studmoney/internal/classification"
	"github.com/Veraticus/studmoney/internal/common"
	"github.com/Veraticus/studmoney/internal/model"
	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"
)

// IDPrefix is prepended to the bank's transaction id so re-importing the
// same statement is detected as duplicates.
const IDPrefix = "ofx-"

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	tagFixRegex   = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// Parser converts OFX statements into expense inputs.
type Parser struct {
	detector *classification.PatternDetector
}

// NewParser creates a parser that guesses categories with the default
// merchant patterns.
func NewParser() *Parser {
	return &Parser{detector: classification.NewDefaultDetector()}
}

// NewParserWithDetector creates a parser using a custom detector. A nil
// detector files every expense under Other.
func NewParserWithDetector(detector *classification.PatternDetector) *Parser {
	return &Parser{detector: detector}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// SEVERITY must be upper case
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// SGML files sometimes lose the closing bracket of a bare opening tag
	return tagFixRegex.ReplaceAllString(content, "$1>")
}

func (p *Parser) parse(reader io.Reader) (*ofxgo.Response, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}
	return resp, nil
}

// ParseFile parses an OFX/QFX file. Debits become expense inputs in
// statement order; credits are skipped.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) ([]model.ExpenseInput, error) {
	resp, err := p.parse(reader)
	if err != nil {
		return nil, err
	}

	var inputs []model.ExpenseInput
	var bankStmts, ccStmts, skipped int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			if stmt.BankTranList == nil {
				continue
			}
			got, n := p.convertTransactions(stmt.BankTranList.Transactions)
			inputs = append(inputs, got...)
			skipped += n
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			if stmt.BankTranList == nil {
				continue
			}
			got, n := p.convertTransactions(stmt.BankTranList.Transactions)
			inputs = append(inputs, got...)
			skipped += n
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	common.LogInfo("Parsed OFX file", common.Fields{
		"expenses":        len(inputs),
		"skipped_credits": skipped,
		"bank_statements": bankStmts,
		"cc_statements":   ccStmts,
	})

	return inputs, nil
}

// convertTransactions returns the debits as inputs and the number of
// non-debit transactions skipped.
func (p *Parser) convertTransactions(txns []ofxgo.Transaction) ([]model.ExpenseInput, int) {
	inputs := make([]model.ExpenseInput, 0, len(txns))
	skipped := 0
	for _, tx := range txns {
		in, ok := p.convertTransaction(tx)
		if !ok {
			skipped++
			continue
		}
		inputs = append(inputs, in)
	}
	return inputs, skipped
}

// convertTransaction converts a debit. OFX uses negative amounts for money
// leaving the account.
func (p *Parser) convertTransaction(tx ofxgo.Transaction) (model.ExpenseInput, bool) {
	amount, err := decimal.NewFromString(tx.TrnAmt.FloatString(2))
	if err != nil || !amount.IsNegative() {
		return model.ExpenseInput{}, false
	}

	title := p.extractMerchantName(tx)
	if title == "" {
		title = fmt.Sprintf("%v", tx.TrnType)
	}

	category := model.CategoryOther
	if p.detector != nil {
		category = p.detector.CategoryFor(model.CategoryOther, title, string(tx.Name), string(tx.Memo))
	}

	in := model.ExpenseInput{
		Title:       title,
		Amount:      amount.Neg(),
		Category:    string(category),
		Date:        model.DateOf(tx.DtPosted.Time).String(),
		Description: strings.TrimSpace(string(tx.Memo)),
	}
	if tx.FiTID != "" {
		in.ID = IDPrefix + string(tx.FiTID)
	}
	if tx.CheckNum != "" && in.Description == "" {
		in.Description = "Check #" + string(tx.CheckNum)
	}
	return in, true
}

var merchantPrefixes = []string{
	"POS PURCHASE ",
	"PURCHASE AUTHORIZED ON ",
	"DEBIT CARD PURCHASE ",
	"ACH DEBIT ",
	"CHECK CARD ",
	"VISA PURCHASE ",
	"MC PURCHASE ",
	"DEBIT PURCHASE ",
	"PAIEMENT CB ",
	"ACHAT CB ",
}

// extractMerchantName tries to get a clean merchant name from OFX data.
func (p *Parser) extractMerchantName(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}

	name := string(tx.Name)

	// MEMO often carries the merchant when NAME is generic
	if tx.Memo != "" && isGenericDescription(name) {
		name = string(tx.Memo)
	}

	name = strings.TrimSpace(name)

	for _, prefix := range merchantPrefixes {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// Leading "MM/DD " dates
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	return name
}

func isGenericDescription(name string) bool {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBIT", "CREDIT", "PURCHASE", "PAYMENT", "POS TRANSACTION", "CARD PURCHASE":
		return true
	}
	return false
}

// GetAccounts extracts unique account IDs from the OFX file.
func (p *Parser) GetAccounts(_ context.Context, reader io.Reader) ([]string, error) {
	resp, err := p.parse(reader)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var accounts []string
	add := func(id ofxgo.String) {
		if id != "" && !seen[string(id)] {
			seen[string(id)] = true
			accounts = append(accounts, string(id))
		}
	}

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			add(stmt.BankAcctFrom.AcctID)
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			add(stmt.CCAcctFrom.AcctID)
		}
	}

	return accounts, nil
}
