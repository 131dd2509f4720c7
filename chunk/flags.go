package chunk

// Flags is the bitset of boolean classifications carried by a Chunk. The
// low 17 bits are copy flags: they propagate from an opener to everything
// nested inside it (PCF_IN_* in the reference implementation). The
// remaining bits are decision flags stamped once a phase of the mark/fix
// pass (or the brace/preprocessor cleanup pass) has made up its mind about
// this specific chunk; they do not propagate.
type Flags uint64

func bit(b uint) Flags { return Flags(1) << b }

const (
	// CopyFlags masks the bits that propagate from an opener to its
	// contents when a new nesting level is entered.
	CopyFlags = Flags(0x0001ffff)

	InPreproc    = bit(0)
	InStruct     = bit(1)
	InEnum       = bit(2)
	InFcnDef     = bit(3)
	InFcnCall    = bit(4)
	InSparen     = bit(5)
	InTemplate   = bit(6)
	InTypedef    = bit(7)
	InConstArgs  = bit(8)
	InArrayAssig = bit(9)
	InClass      = bit(10)
	InClassBase  = bit(11)
	InNamespace  = bit(12)
	InFor        = bit(13)
	InOcMsg      = bit(14)
	InWhereSpec  = bit(15)
	InDecltype   = bit(16)

	ForceSpace    = bit(17)
	StmtStart     = bit(18)
	ExprStart     = bit(19)
	DontIndent    = bit(20)
	AlignStart    = bit(21)
	WasAligned    = bit(22)
	VarType       = bit(23)
	VarDef        = bit(24)
	Var1st        = bit(25)
	Var1stDef     = VarDef | Var1st
	VarInline     = bit(26)
	RightComment  = bit(27)
	OldFcnParams  = bit(28)
	Lvalue        = bit(29)
	OneLiner      = bit(30)
	OneClass      = OneLiner | InClass
	EmptyBody     = bit(31)
	Anchor        = bit(32)
	Punctuator    = bit(33)
	Inserted      = bit(34)
	LongBlock     = bit(35)
	OcBoxed       = bit(36)
	KeepBrace     = bit(37)
	OcRtype       = bit(38)
	OcAtype       = bit(39)
	WfEndif       = bit(40)
	InQtMacro     = bit(41)
	InFcnCtor     = bit(42)
	InTryBlock    = bit(43)
	Incomplete    = bit(44)
	InLambda      = bit(45)
	WfIf          = bit(46)
	NotPossible   = bit(47)
	InConditional = bit(48)
	OcInBlock     = bit(49)
	ContLine      = bit(50)
)

// Has reports whether all bits of mask are set in f.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// Any reports whether at least one bit of mask is set in f.
func (f Flags) Any(mask Flags) bool { return f&mask != 0 }

// Set returns f with every bit of mask set.
func (f Flags) Set(mask Flags) Flags { return f | mask }

// Clear returns f with every bit of mask cleared.
func (f Flags) Clear(mask Flags) Flags { return f &^ mask }

// Copy returns the subset of f that should propagate to a chunk nested one
// level deeper (e.g. when pushing a new parse frame in the brace/PP pass).
func (f Flags) Copy() Flags { return f & CopyFlags }
