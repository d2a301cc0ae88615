package isodoc

import "encoding/xml"

// Camt053Document is the raw bank-to-customer statement document.
type Camt053Document struct {
	XMLName       xml.Name      `xml:"Document" json:"-"`
	Xmlns         string        `xml:"xmlns,attr" json:"@_xmlns"`
	XmlnsXsi      string        `xml:"xmlns:xsi,attr,omitempty" json:"@_xmlns:xsi,omitempty"`
	BkToCstmrStmt BkToCstmrStmt `xml:"BkToCstmrStmt" json:"BkToCstmrStmt"`
}

// BkToCstmrStmt wraps the statement list and its header.
type BkToCstmrStmt struct {
	GrpHdr MessageHeader `xml:"GrpHdr" json:"GrpHdr"`
	Stmt   []Stmt        `xml:"Stmt" json:"Stmt"`
}

// Stmt is one raw statement.
type Stmt struct {
	ID           string      `xml:"Id" json:"Id"`
	ElctrncSeqNb string      `xml:"ElctrncSeqNb,omitempty" json:"ElctrncSeqNb,omitempty"`
	LglSeqNb     string      `xml:"LglSeqNb,omitempty" json:"LglSeqNb,omitempty"`
	CreDtTm      string      `xml:"CreDtTm" json:"CreDtTm"`
	FrToDt       *Period     `xml:"FrToDt,omitempty" json:"FrToDt,omitempty"`
	Acct         StmtAccount `xml:"Acct" json:"Acct"`
	TxsSummry    *TxsSummary `xml:"TxsSummry,omitempty" json:"TxsSummry,omitempty"`
	Bal          []Bal       `xml:"Bal,omitempty" json:"Bal,omitempty"`
	Ntry         []Ntry      `xml:"Ntry,omitempty" json:"Ntry,omitempty"`
}

// Period is the statement from/to period.
type Period struct {
	FrDtTm string `xml:"FrDtTm,omitempty" json:"FrDtTm,omitempty"`
	ToDtTm string `xml:"ToDtTm,omitempty" json:"ToDtTm,omitempty"`
}

// StmtAccount extends the shared account shape with owner and servicer.
type StmtAccount struct {
	ID   AccountID    `xml:"Id" json:"Id"`
	Tp   *AccountType `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ccy  string       `xml:"Ccy,omitempty" json:"Ccy,omitempty"`
	Nm   string       `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Ownr *Party       `xml:"Ownr,omitempty" json:"Ownr,omitempty"`
	Svcr *Agent       `xml:"Svcr,omitempty" json:"Svcr,omitempty"`
}

// TxsSummary carries the bank-reported aggregate entry figures.
type TxsSummary struct {
	TtlNtries    *TotalEntries `xml:"TtlNtries,omitempty" json:"TtlNtries,omitempty"`
	TtlCdtNtries *TotalEntries `xml:"TtlCdtNtries,omitempty" json:"TtlCdtNtries,omitempty"`
	TtlDbtNtries *TotalEntries `xml:"TtlDbtNtries,omitempty" json:"TtlDbtNtries,omitempty"`
}

// TotalEntries is one aggregate block of the transaction summary.
type TotalEntries struct {
	NbOfNtries    string `xml:"NbOfNtries,omitempty" json:"NbOfNtries,omitempty"`
	Sum           string `xml:"Sum,omitempty" json:"Sum,omitempty"`
	TtlNetNtryAmt string `xml:"TtlNetNtryAmt,omitempty" json:"TtlNetNtryAmt,omitempty"`
	CdtDbtInd     string `xml:"CdtDbtInd,omitempty" json:"CdtDbtInd,omitempty"`
}

// Bal is one raw balance.
type Bal struct {
	Tp        BalType     `xml:"Tp" json:"Tp"`
	Amt       Amount      `xml:"Amt" json:"Amt"`
	CdtDbtInd string      `xml:"CdtDbtInd" json:"CdtDbtInd"`
	Dt        *DateChoice `xml:"Dt,omitempty" json:"Dt,omitempty"`
}

// BalType is the balance-type code wrapper.
type BalType struct {
	CdOrPrtry CodeOrProprietary `xml:"CdOrPrtry" json:"CdOrPrtry"`
}

// CodeOrProprietary is the code-or-proprietary choice.
type CodeOrProprietary struct {
	Cd    string `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry string `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

// Ntry is one raw statement entry.
type Ntry struct {
	NtryRef      string      `xml:"NtryRef,omitempty" json:"NtryRef,omitempty"`
	Amt          Amount      `xml:"Amt" json:"Amt"`
	CdtDbtInd    string      `xml:"CdtDbtInd" json:"CdtDbtInd"`
	RvslInd      string      `xml:"RvslInd,omitempty" json:"RvslInd,omitempty"`
	Sts          string      `xml:"Sts,omitempty" json:"Sts,omitempty"`
	BookgDt      *DateChoice `xml:"BookgDt,omitempty" json:"BookgDt,omitempty"`
	ValDt        *DateChoice `xml:"ValDt,omitempty" json:"ValDt,omitempty"`
	AcctSvcrRef  string      `xml:"AcctSvcrRef,omitempty" json:"AcctSvcrRef,omitempty"`
	BkTxCd       *BkTxCd     `xml:"BkTxCd,omitempty" json:"BkTxCd,omitempty"`
	NtryDtls     []NtryDtls  `xml:"NtryDtls,omitempty" json:"NtryDtls,omitempty"`
	AddtlNtryInf string      `xml:"AddtlNtryInf,omitempty" json:"AddtlNtryInf,omitempty"`
}

// BkTxCd is the bank transaction code: domain classification plus the bank's
// proprietary code.
type BkTxCd struct {
	Domn  *Domain            `xml:"Domn,omitempty" json:"Domn,omitempty"`
	Prtry *ProprietaryTxCode `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

// Domain is the domain/family classification.
type Domain struct {
	Cd   string  `xml:"Cd" json:"Cd"`
	Fmly *Family `xml:"Fmly,omitempty" json:"Fmly,omitempty"`
}

// Family is the family/sub-family classification.
type Family struct {
	Cd        string `xml:"Cd,omitempty" json:"Cd,omitempty"`
	SubFmlyCd string `xml:"SubFmlyCd,omitempty" json:"SubFmlyCd,omitempty"`
}

// ProprietaryTxCode is the bank's own transaction code.
type ProprietaryTxCode struct {
	Cd   string `xml:"Cd" json:"Cd"`
	Issr string `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

// NtryDtls is one entry-details group wrapping transaction details.
type NtryDtls struct {
	TxDtls []TxDtls `xml:"TxDtls,omitempty" json:"TxDtls,omitempty"`
}

// TxDtls is one raw transaction detail.
type TxDtls struct {
	Refs       *Refs       `xml:"Refs,omitempty" json:"Refs,omitempty"`
	Amt        *Amount     `xml:"Amt,omitempty" json:"Amt,omitempty"`
	CdtDbtInd  string      `xml:"CdtDbtInd,omitempty" json:"CdtDbtInd,omitempty"`
	AmtDtls    *AmtDtls    `xml:"AmtDtls,omitempty" json:"AmtDtls,omitempty"`
	RltdPties  *RltdPties  `xml:"RltdPties,omitempty" json:"RltdPties,omitempty"`
	RmtInf     *RmtInf     `xml:"RmtInf,omitempty" json:"RmtInf,omitempty"`
	RtrInf     *RtrInf     `xml:"RtrInf,omitempty" json:"RtrInf,omitempty"`
	AddtlTxInf string      `xml:"AddtlTxInf,omitempty" json:"AddtlTxInf,omitempty"`
}

// Refs carries the transaction reference ids.
type Refs struct {
	MsgID       string `xml:"MsgId,omitempty" json:"MsgId,omitempty"`
	AcctSvcrRef string `xml:"AcctSvcrRef,omitempty" json:"AcctSvcrRef,omitempty"`
	PmtInfID    string `xml:"PmtInfId,omitempty" json:"PmtInfId,omitempty"`
	EndToEndID  string `xml:"EndToEndId,omitempty" json:"EndToEndId,omitempty"`
	TxID        string `xml:"TxId,omitempty" json:"TxId,omitempty"`
}

// AmtDtls carries the instructed (pre-FX) and transaction (post-FX) amounts.
type AmtDtls struct {
	InstdAmt *WrappedAmount `xml:"InstdAmt,omitempty" json:"InstdAmt,omitempty"`
	TxAmt    *WrappedAmount `xml:"TxAmt,omitempty" json:"TxAmt,omitempty"`
}

// WrappedAmount is an amount nested one level deeper than usual.
type WrappedAmount struct {
	Amt Amount `xml:"Amt" json:"Amt"`
}

// RltdPties carries the debtor/creditor parties and accounts.
type RltdPties struct {
	Dbtr     *Party       `xml:"Dbtr,omitempty" json:"Dbtr,omitempty"`
	DbtrAcct *CashAccount `xml:"DbtrAcct,omitempty" json:"DbtrAcct,omitempty"`
	Cdtr     *Party       `xml:"Cdtr,omitempty" json:"Cdtr,omitempty"`
	CdtrAcct *CashAccount `xml:"CdtrAcct,omitempty" json:"CdtrAcct,omitempty"`
}

// RmtInf is the unstructured remittance information, one or many lines.
type RmtInf struct {
	Ustrd []string `xml:"Ustrd,omitempty" json:"Ustrd,omitempty"`
}

// RtrInf is the return reason block.
type RtrInf struct {
	Rsn      *ReturnReason `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
	AddtlInf []string      `xml:"AddtlInf,omitempty" json:"AddtlInf,omitempty"`
}

// ReturnReason is the code-or-proprietary return reason.
type ReturnReason struct {
	Cd    string `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry string `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}
