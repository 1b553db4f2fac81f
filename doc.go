/*
Package filtermodel implements the filter condition of a single table
column: an operator, the operands it compares column values with, and
flags controlling when and how the condition applies.

	m, err := filtermodel.New[int]("age")
	if err != nil {
		log.Fatal(err)
	}
	m.SetOperator(filtermodel.Between)
	m.Operands().LowerBound().Set(18)
	m.Operands().UpperBound().Set(65)

	m.Enabled()    // true, both bounds are set
	m.Accepts(30)  // true
	m.Accepts(70)  // false

Auto-enable:

With auto-enable on (the default) a model enables itself as soon as the
operands its operator reads are set, and disables itself when one of them
is cleared. Equal and NotEqual read the equal operand, In and NotIn the in
set, LessThan and LessThanOrEqual the upper bound, GreaterThan and
GreaterThanOrEqual the lower bound, and the four range operators both
bounds. SetEnabled still works, but the next recomputation overrides it.

Nulls:

Null operands and null column values are modelled by absence: Operand.Get
returns ok false, and AcceptsNull evaluates a null value. An ordering
operator whose bounds are null accepts everything, null included.

Text:

Columns whose type has a string kind are textual. Their equal and in
operands may contain the wildcard rune (% unless configured otherwise),
which matches any run of characters. The automatic wildcard policy wraps
the equal operand when it's read under Equal or NotEqual. A
case-insensitive model folds strings, Char values and any type with a
ToLower method before comparing.

Notifications:

Every mutation notifies synchronously, in this order: the notification
of the changed field (operator, operand, case sensitivity, ...), then
enabled if auto-enable flipped it, then OnChanged, which fires once per
mutation that may change what the condition accepts. Listeners may read
the model and unsubscribe themselves.

Errors:

Construction fails with ErrInvalidConfiguration. Mutating a locked model
fails with ErrLocked and leaves it unchanged. Setting an operator outside
the allowed set fails with ErrOperatorNotAllowed.

A Model is not safe for concurrent use. Confine it to one goroutine, or
serialize access.
*/
package filtermodel
