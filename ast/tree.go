package ast

import "github.com/fzipp/rcc/diag"

// StmtKind tags the top-level Stmt tagged union.
type StmtKind int

const (
	StmtLanguage StmtKind = iota
	StmtResourceExternal
	StmtResourceRawData
	StmtStringTable
	StmtAccelerators
	StmtDialog
	StmtMenu
	StmtVersionInfo
	StmtDlgInclude
	StmtToolbar
	StmtDefaultAttr
	StmtInvalid
)

// ResourceID is the leading <id> of an id-led resource statement: the
// source text of a NameOrOrdinal-classifiable literal, plus its span.
type ResourceID struct {
	Text []byte
	Span diag.Span
}

// CommonAttrs is the contiguous run of memory-flag keywords read between a
// resource's type keyword and its body (spec.md §4.3 step 4), plus the
// optional LANGUAGE/CHARACTERISTICS/VERSION statements a resource can carry
// of its own.
type CommonAttrs struct {
	MemFlags        MemFlags
	Language        *Expr // primary | (sub<<10), if overridden per-resource
	Version         *Expr
	Characteristics *Expr
}

// Stmt is a top-level syntax tree node (spec.md §3's ResourceExternal,
// ResourceRawData, StringTable, Accelerators, Dialog, Menu, VersionInfo,
// plus the supplemental DlgInclude/Toolbar of SPEC_FULL.md). Exactly the
// fields for Kind are populated.
type Stmt struct {
	Kind StmtKind
	Span diag.Span

	ID   ResourceID
	Type ResourceKind
	// TypeOrdinal carries the numeric type value when the resource type
	// keyword was a bare number >= 256 (user-defined) or any other
	// ordinal the grammar admits as a type.
	TypeOrdinal uint16
	TypeIsName  bool
	TypeName    []byte

	Attrs CommonAttrs

	// StmtLanguage
	LangPrimary, LangSub *Expr

	// StmtResourceExternal
	Filename *Expr

	// StmtResourceRawData
	RawData []*Expr

	// StmtStringTable
	StringTable *StringTable

	// StmtAccelerators
	Accelerators []AcceleratorEntry

	// StmtDialog
	Dialog *Dialog

	// StmtMenu
	Menu *Menu

	// StmtVersionInfo
	VersionInfo *VersionInfo

	// StmtDlgInclude
	DlgIncludeFile *Expr

	// StmtToolbar
	Toolbar *Toolbar

	// StmtDefaultAttr: a bare top-level VERSION or CHARACTERISTICS
	// statement, setting the compiler-wide default applied to any later
	// resource that doesn't carry its own (mirrors LANGUAGE's file-default
	// propagation, spec.md §8).
	DefaultAttrIsVersion bool
	DefaultAttrValue     *Expr

	// StmtInvalid
	InvalidTokens []diag.Span
}

// Root is the top of a per-parse syntax tree (spec.md §3).
type Root struct {
	Body []*Stmt
}

// StringTable is the body of a STRINGTABLE statement: a set of (id, text)
// entries (spec.md §4.5). The optional LANGUAGE/CHARACTERISTICS/VERSION
// statements that precede the body are kept in the statement's Attrs.
type StringTable struct {
	Entries []StringTableEntry
}

type StringTableEntry struct {
	ID   *Expr
	Text *Expr // ExprNarrowString or ExprWideString
	Span diag.Span
}

// AcceleratorEntry is one entry of an ACCELERATORS table (spec.md §4.5).
type AcceleratorEntry struct {
	Event    *Expr // quoted key string or numeric key code
	IsString bool
	ID       *Expr
	ASCII    bool
	VirtKey  bool
	NoInvert bool
	Shift    bool
	Control  bool
	Alt      bool
	Span     diag.Span
}

// Dialog is the body of a DIALOG or DIALOGEX statement (spec.md §4.5, §6).
type Dialog struct {
	IsEx               bool
	X, Y, W, H         *Expr
	HelpID             *Expr // DIALOGEX only
	Style, ExStyle     *Expr
	Caption            *Expr
	ClassID            *Expr // NameOrOrdinal-valued
	MenuID             *Expr
	FontName           *Expr
	FontSize           *Expr
	FontWeight         *Expr
	FontItalic         bool
	FontCharset        *Expr
	HasFont            bool
	Controls           []*DialogControl
}

// DialogControl is one control statement inside a DIALOG/DIALOGEX body
// (spec.md §4.5).
type DialogControl struct {
	Kind           string // CONTROL, LTEXT, EDITTEXT, PUSHBUTTON, etc.
	Text           *Expr
	ID             *Expr
	ClassID        *Expr // NameOrOrdinal, predefined or CONTROL's CLASS
	X, Y, W, H     *Expr
	Style          *Expr
	ExStyle        *Expr
	HelpID         *Expr // DIALOGEX only
	CreationData   []byte
	MissingComma   bool // triggers the style-miscompile warning (spec.md §4.3)
	Span           diag.Span
}

// Menu is the body of a MENU or MENUEX statement (spec.md §4.5).
type Menu struct {
	IsEx  bool
	Items []*MenuItem
}

// MenuItem is one node of the menu item tree; popups nest children
// (spec.md §3, §4.5).
type MenuItem struct {
	IsPopup    bool
	IsSeparator bool
	Text       *Expr
	ID         *Expr   // classic: u16; ex: u32
	Flags      uint16  // classic flags, or ex's trailing u16 flags
	Type       *Expr   // ex only
	State      *Expr   // ex only
	HelpID     *Expr   // ex popups only
	Children   []*MenuItem
	Span       diag.Span
}

// VersionInfo is the body of a VERSIONINFO statement (spec.md §4.5, §6).
type VersionInfo struct {
	FileVersionMS, FileVersionLS     [2]*Expr
	ProductVersionMS, ProductVersionLS [2]*Expr
	FileFlagsMask *Expr
	FileFlags     *Expr
	FileOS        *Expr
	FileType      *Expr
	FileSubtype   *Expr
	Blocks        []*VersionInfoBlock
}

// VersionInfoBlock is a BLOCK node of a VERSIONINFO tree, or (at the top
// level) a StringFileInfo/VarFileInfo block (spec.md §4.5).
type VersionInfoBlock struct {
	Key      []byte
	IsBinary bool
	Values   []VersionInfoValue
	Children []*VersionInfoBlock
	Span     diag.Span
}

// VersionInfoValue is one VALUE statement's worth of data inside a block:
// either a text value (string) or a sequence of numbers written as binary.
// Each VALUE statement becomes its own emitted sub-block keyed by Key
// (spec.md §4.5).
type VersionInfoValue struct {
	Key     []byte
	Text    *Expr // non-nil for a string value
	Numbers []*Expr
}

// Toolbar is the supplemental TOOLBAR resource body (SPEC_FULL.md).
type Toolbar struct {
	ButtonWidth, ButtonHeight *Expr
	// Buttons holds a NameOrOrdinal-valued id Expr per BUTTON, or nil for
	// each SEPARATOR.
	Buttons []*Expr
}
