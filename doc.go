// Package scicalc implements the evaluation engine of a scientific calculator.
//
// Expressions are written the way they are keyed into a calculator: "2+3*4",
// "sqrt(16)", "5!", "sin(90)". Evaluation happens in three stages. Tokenize
// splits the input, ToPostfix reorders the tokens into postfix order with the
// shunting-yard algorithm, and EvalPostfix runs the postfix program on an
// operand stack. Eval does all three and rounds away floating-point noise.
//
// Trigonometric functions take degrees. The constants pi and e are not part of
// the expression language; a Session splices their digits into the expression
// the same way it does for the memory register.
//
package scicalc
