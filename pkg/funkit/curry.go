package funkit

func Curry2[A, B, Out any](f func(A, B) Out) func(A) func(B) Out {
	return func(a A) func(B) Out {
		return func(b B) Out { return f(a, b) }
	}
}

func Curry3[A, B, C, Out any](f func(A, B, C) Out) func(A) func(B) func(C) Out {
	return func(a A) func(B) func(C) Out {
		return Curry2(func(b B, c C) Out { return f(a, b, c) })
	}
}

func Curry4[A, B, C, D, Out any](f func(A, B, C, D) Out) func(A) func(B) func(C) func(D) Out {
	return func(a A) func(B) func(C) func(D) Out {
		return Curry3(func(b B, c C, d D) Out { return f(a, b, c, d) })
	}
}

func Curry5[A, B, C, D, E, Out any](f func(A, B, C, D, E) Out) func(A) func(B) func(C) func(D) func(E) Out {
	return func(a A) func(B) func(C) func(D) func(E) Out {
		return Curry4(func(b B, c C, d D, e E) Out { return f(a, b, c, d, e) })
	}
}

func Curry6[A, B, C, D, E, F, Out any](f func(A, B, C, D, E, F) Out) func(A) func(B) func(C) func(D) func(E) func(F) Out {
	return func(a A) func(B) func(C) func(D) func(E) func(F) Out {
		return Curry5(func(b B, c C, d D, e E, f_ F) Out { return f(a, b, c, d, e, f_) })
	}
}

func Uncurry2[A, B, Out any](f func(A) func(B) Out) func(A, B) Out {
	return func(a A, b B) Out { return f(a)(b) }
}

func Uncurry3[A, B, C, Out any](f func(A) func(B) func(C) Out) func(A, B, C) Out {
	return func(a A, b B, c C) Out { return f(a)(b)(c) }
}

func Uncurry4[A, B, C, D, Out any](f func(A) func(B) func(C) func(D) Out) func(A, B, C, D) Out {
	return func(a A, b B, c C, d D) Out { return f(a)(b)(c)(d) }
}

func Uncurry5[A, B, C, D, E, Out any](f func(A) func(B) func(C) func(D) func(E) Out) func(A, B, C, D, E) Out {
	return func(a A, b B, c C, d D, e E) Out { return f(a)(b)(c)(d)(e) }
}

func Uncurry6[A, B, C, D, E, F, Out any](f func(A) func(B) func(C) func(D) func(E) func(F) Out) func(A, B, C, D, E, F) Out {
	return func(a A, b B, c C, d D, e E, f_ F) Out { return f(a)(b)(c)(d)(e)(f_) }
}
