package chunk

// Type is the role tag assigned to a Chunk: what the chunk currently means
// in context. It is reassigned as the classification pipeline learns more
// about the surrounding code (mark/fix pass, component F).
type Type uint16

// The full set of role tags the core can assign, carried over from the
// closed token enumeration of the reference beautifier: general lexical
// categories, keywords per supported language, operators split by meaning
// (e.g. Star vs PtrType vs Deref vs Arith for the four roles a bare '*' can
// take), paired opener/closer tags for every bracket kind, preprocessor
// directive tags, and per-language extensions (Objective-C, Pawn, C#,
// embedded SQL, Vala, Java, Qt and machine-mode macro extensions).
const (
	None Type = iota
	Eof
	Unknown
	Junk
	Whitespace
	Space
	Newline
	NlCont
	CommentCpp
	Comment
	CommentMulti
	CommentEmbed
	CommentStart
	CommentEnd
	CommentWhole
	CommentEndif
	Ignored
	Word
	Number
	NumberFp
	String
	StringMulti
	If
	Else
	Elseif
	For
	While
	WhileOfDo
	Switch
	Case
	Do
	Synchronized
	Volatile
	Typedef
	Struct
	Enum
	EnumClass
	Sizeof
	Return
	Break
	Union
	Goto
	Continue
	CCast
	CppCast
	DCast
	TypeCast
	Typename
	Template
	Decltype
	WhereSpec
	Assign
	AssignNl
	Sassign
	Compare
	Scompare
	Bool
	Sbool
	Arith
	Sarith
	Caret
	Deref
	IncdecBefore
	IncdecAfter
	Member
	DcMember
	C99Member
	Inv
	Destructor
	Not
	DTemplate
	Addr
	Neg
	Pos
	Star
	Plus
	Minus
	Amp
	Byref
	Pound
	Preproc
	PreprocIndent
	PreprocBody
	Pp
	Ellipsis
	Range
	Nullcond
	Semicolon
	Vsemicolon
	Colon
	AsmColon
	CaseColon
	ClassColon
	ConstrColon
	DArrayColon
	CondColon
	WhereColon
	Question
	Comma
	Asm
	Attribute
	Catch
	When
	Where
	Class
	Delete
	Export
	Friend
	Namespace
	Package
	New
	Operator
	OperatorVal
	Private
	PrivateColon
	Throw
	Noexcept
	Try
	BracedInitList
	Using
	UsingStmt
	DWith
	DModule
	Super
	Delegate
	Body
	Debug
	Debugger
	Invariant
	Unittest
	Unsafe
	Finally
	Import
	DScope
	DScopeIf
	Lazy
	DMacro
	DVersion
	DVersionIf
	ParenOpen
	ParenClose
	AngleOpen
	AngleClose
	SparenOpen
	SparenClose
	FparenOpen
	FparenClose
	TparenOpen
	TparenClose
	BraceOpen
	BraceClose
	VbraceOpen
	VbraceClose
	SquareOpen
	SquareClose
	Tsquare
	MacroOpen
	MacroClose
	MacroElse
	Label
	LabelColon
	Function
	FuncCall
	FuncCallUser
	FuncDef
	FuncType
	FuncVar
	FuncProto
	FuncStart
	FuncClassDef
	FuncClassProto
	FuncCtorVar
	FuncWrap
	ProtoWrap
	MacroFunc
	Macro
	Qualifier
	Extern
	Declspec
	Align
	TypeTag
	PtrType
	TypeWrap
	CppLambda
	CppLambdaRet
	BitColon
	OcDynamic
	OcEnd
	OcImpl
	OcIntf
	OcProtocol
	OcProtoList
	OcGenericSpec
	OcProperty
	OcClass
	OcClassExt
	OcCategory
	OcScope
	OcMsg
	OcMsgClass
	OcMsgFunc
	OcMsgName
	OcMsgSpec
	OcMsgDecl
	OcRtype
	OcAtype
	OcColon
	OcDictColon
	OcSel
	OcSelName
	OcBlock
	OcBlockArg
	OcBlockType
	OcBlockExpr
	OcBlockCaret
	OcAt
	OcPropertyAttr
	PpDefine
	PpDefined
	PpInclude
	PpIf
	PpElse
	PpEndif
	PpAssert
	PpEmit
	PpEndinput
	PpError
	PpFile
	PpLine
	PpSection
	PpAsm
	PpUndef
	PpProperty
	PpBodychunk
	PpPragma
	PpRegion
	PpEndregion
	PpRegionIndent
	PpIfIndent
	PpIgnore
	PpOther
	Char
	Defined
	Forward
	Native
	State
	Stock
	Tagof
	Dot
	Tag
	TagColon
	Lock
	As
	In
	Braced
	This
	Base
	Default
	Getset
	GetsetEmpty
	Concat
	CsSqStmt
	CsSqColon
	CsProperty
	SqlExec
	SqlBegin
	SqlEnd
	SqlWord
	Construct
	Lambda
	Assert
	Annotation
	ForColon
	DoubleBrace
	CngHasinc
	CngHasincn
	QEmit
	QForeach
	QForever
	QGadget
	QObject
	Mode
	Di
	Hi
	Qi
	Si
	Nothrow
	Word2
	IgnoreContent
)

// count is the number of distinct Type values.
const count = 289

var typeNames = map[Type]string{
	None: "none",
	Eof: "eof",
	Unknown: "unknown",
	Junk: "junk",
	Whitespace: "whitespace",
	Space: "space",
	Newline: "newline",
	NlCont: "nl_cont",
	CommentCpp: "comment_cpp",
	Comment: "comment",
	CommentMulti: "comment_multi",
	CommentEmbed: "comment_embed",
	CommentStart: "comment_start",
	CommentEnd: "comment_end",
	CommentWhole: "comment_whole",
	CommentEndif: "comment_endif",
	Ignored: "ignored",
	Word: "word",
	Number: "number",
	NumberFp: "number_fp",
	String: "string",
	StringMulti: "string_multi",
	If: "if",
	Else: "else",
	Elseif: "elseif",
	For: "for",
	While: "while",
	WhileOfDo: "while_of_do",
	Switch: "switch",
	Case: "case",
	Do: "do",
	Synchronized: "synchronized",
	Volatile: "volatile",
	Typedef: "typedef",
	Struct: "struct",
	Enum: "enum",
	EnumClass: "enum_class",
	Sizeof: "sizeof",
	Return: "return",
	Break: "break",
	Union: "union",
	Goto: "goto",
	Continue: "continue",
	CCast: "c_cast",
	CppCast: "cpp_cast",
	DCast: "d_cast",
	TypeCast: "type_cast",
	Typename: "typename",
	Template: "template",
	Decltype: "decltype",
	WhereSpec: "where_spec",
	Assign: "assign",
	AssignNl: "assign_nl",
	Sassign: "sassign",
	Compare: "compare",
	Scompare: "scompare",
	Bool: "bool",
	Sbool: "sbool",
	Arith: "arith",
	Sarith: "sarith",
	Caret: "caret",
	Deref: "deref",
	IncdecBefore: "incdec_before",
	IncdecAfter: "incdec_after",
	Member: "member",
	DcMember: "dc_member",
	C99Member: "c99_member",
	Inv: "inv",
	Destructor: "destructor",
	Not: "not",
	DTemplate: "d_template",
	Addr: "addr",
	Neg: "neg",
	Pos: "pos",
	Star: "star",
	Plus: "plus",
	Minus: "minus",
	Amp: "amp",
	Byref: "byref",
	Pound: "pound",
	Preproc: "preproc",
	PreprocIndent: "preproc_indent",
	PreprocBody: "preproc_body",
	Pp: "pp",
	Ellipsis: "ellipsis",
	Range: "range",
	Nullcond: "nullcond",
	Semicolon: "semicolon",
	Vsemicolon: "vsemicolon",
	Colon: "colon",
	AsmColon: "asm_colon",
	CaseColon: "case_colon",
	ClassColon: "class_colon",
	ConstrColon: "constr_colon",
	DArrayColon: "d_array_colon",
	CondColon: "cond_colon",
	WhereColon: "where_colon",
	Question: "question",
	Comma: "comma",
	Asm: "asm",
	Attribute: "attribute",
	Catch: "catch",
	When: "when",
	Where: "where",
	Class: "class",
	Delete: "delete",
	Export: "export",
	Friend: "friend",
	Namespace: "namespace",
	Package: "package",
	New: "new",
	Operator: "operator",
	OperatorVal: "operator_val",
	Private: "private",
	PrivateColon: "private_colon",
	Throw: "throw",
	Noexcept: "noexcept",
	Try: "try",
	BracedInitList: "braced_init_list",
	Using: "using",
	UsingStmt: "using_stmt",
	DWith: "d_with",
	DModule: "d_module",
	Super: "super",
	Delegate: "delegate",
	Body: "body",
	Debug: "debug",
	Debugger: "debugger",
	Invariant: "invariant",
	Unittest: "unittest",
	Unsafe: "unsafe",
	Finally: "finally",
	Import: "import",
	DScope: "d_scope",
	DScopeIf: "d_scope_if",
	Lazy: "lazy",
	DMacro: "d_macro",
	DVersion: "d_version",
	DVersionIf: "d_version_if",
	ParenOpen: "paren_open",
	ParenClose: "paren_close",
	AngleOpen: "angle_open",
	AngleClose: "angle_close",
	SparenOpen: "sparen_open",
	SparenClose: "sparen_close",
	FparenOpen: "fparen_open",
	FparenClose: "fparen_close",
	TparenOpen: "tparen_open",
	TparenClose: "tparen_close",
	BraceOpen: "brace_open",
	BraceClose: "brace_close",
	VbraceOpen: "vbrace_open",
	VbraceClose: "vbrace_close",
	SquareOpen: "square_open",
	SquareClose: "square_close",
	Tsquare: "tsquare",
	MacroOpen: "macro_open",
	MacroClose: "macro_close",
	MacroElse: "macro_else",
	Label: "label",
	LabelColon: "label_colon",
	Function: "function",
	FuncCall: "func_call",
	FuncCallUser: "func_call_user",
	FuncDef: "func_def",
	FuncType: "func_type",
	FuncVar: "func_var",
	FuncProto: "func_proto",
	FuncStart: "func_start",
	FuncClassDef: "func_class_def",
	FuncClassProto: "func_class_proto",
	FuncCtorVar: "func_ctor_var",
	FuncWrap: "func_wrap",
	ProtoWrap: "proto_wrap",
	MacroFunc: "macro_func",
	Macro: "macro",
	Qualifier: "qualifier",
	Extern: "extern",
	Declspec: "declspec",
	Align: "align",
	TypeTag: "type",
	PtrType: "ptr_type",
	TypeWrap: "type_wrap",
	CppLambda: "cpp_lambda",
	CppLambdaRet: "cpp_lambda_ret",
	BitColon: "bit_colon",
	OcDynamic: "oc_dynamic",
	OcEnd: "oc_end",
	OcImpl: "oc_impl",
	OcIntf: "oc_intf",
	OcProtocol: "oc_protocol",
	OcProtoList: "oc_proto_list",
	OcGenericSpec: "oc_generic_spec",
	OcProperty: "oc_property",
	OcClass: "oc_class",
	OcClassExt: "oc_class_ext",
	OcCategory: "oc_category",
	OcScope: "oc_scope",
	OcMsg: "oc_msg",
	OcMsgClass: "oc_msg_class",
	OcMsgFunc: "oc_msg_func",
	OcMsgName: "oc_msg_name",
	OcMsgSpec: "oc_msg_spec",
	OcMsgDecl: "oc_msg_decl",
	OcRtype: "oc_rtype",
	OcAtype: "oc_atype",
	OcColon: "oc_colon",
	OcDictColon: "oc_dict_colon",
	OcSel: "oc_sel",
	OcSelName: "oc_sel_name",
	OcBlock: "oc_block",
	OcBlockArg: "oc_block_arg",
	OcBlockType: "oc_block_type",
	OcBlockExpr: "oc_block_expr",
	OcBlockCaret: "oc_block_caret",
	OcAt: "oc_at",
	OcPropertyAttr: "oc_property_attr",
	PpDefine: "pp_define",
	PpDefined: "pp_defined",
	PpInclude: "pp_include",
	PpIf: "pp_if",
	PpElse: "pp_else",
	PpEndif: "pp_endif",
	PpAssert: "pp_assert",
	PpEmit: "pp_emit",
	PpEndinput: "pp_endinput",
	PpError: "pp_error",
	PpFile: "pp_file",
	PpLine: "pp_line",
	PpSection: "pp_section",
	PpAsm: "pp_asm",
	PpUndef: "pp_undef",
	PpProperty: "pp_property",
	PpBodychunk: "pp_bodychunk",
	PpPragma: "pp_pragma",
	PpRegion: "pp_region",
	PpEndregion: "pp_endregion",
	PpRegionIndent: "pp_region_indent",
	PpIfIndent: "pp_if_indent",
	PpIgnore: "pp_ignore",
	PpOther: "pp_other",
	Char: "char",
	Defined: "defined",
	Forward: "forward",
	Native: "native",
	State: "state",
	Stock: "stock",
	Tagof: "tagof",
	Dot: "dot",
	Tag: "tag",
	TagColon: "tag_colon",
	Lock: "lock",
	As: "as",
	In: "in",
	Braced: "braced",
	This: "this",
	Base: "base",
	Default: "default",
	Getset: "getset",
	GetsetEmpty: "getset_empty",
	Concat: "concat",
	CsSqStmt: "cs_sq_stmt",
	CsSqColon: "cs_sq_colon",
	CsProperty: "cs_property",
	SqlExec: "sql_exec",
	SqlBegin: "sql_begin",
	SqlEnd: "sql_end",
	SqlWord: "sql_word",
	Construct: "construct",
	Lambda: "lambda",
	Assert: "assert",
	Annotation: "annotation",
	ForColon: "for_colon",
	DoubleBrace: "double_brace",
	CngHasinc: "cng_hasinc",
	CngHasincn: "cng_hasincn",
	QEmit: "q_emit",
	QForeach: "q_foreach",
	QForever: "q_forever",
	QGadget: "q_gadget",
	QObject: "q_object",
	Mode: "mode",
	Di: "di",
	Hi: "hi",
	Qi: "qi",
	Si: "si",
	Nothrow: "nothrow",
	Word2: "word",
	IgnoreContent: "ignore_content",
}

// String implements fmt.Stringer, returning the lower_snake_case name used
// in diagnostics and debug dumps.
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown"
}
