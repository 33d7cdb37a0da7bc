package fragments

import "github.com/ritzau/sea-ir/pkg/ir"

func straightLine() (*ir.Graph, error) {
	b := newBuilder()
	a := b.a

	one := a.NewLiteral(ir.Number(1))
	ret := a.NewReturn(one)
	pass := a.NewPass(ret)
	b.start(pass)
	b.add(pass, ret, one)

	return b.done()
}

func ifElse() (*ir.Graph, error) {
	b := newBuilder()
	a := b.a

	x := a.NewParameter(0)
	zero := a.NewLiteral(ir.Number(0))
	le := a.NewBinary("<=", x, zero)
	cond := a.NewPrefixUnary("!", le)

	merge := a.NewMerge(ir.NoVertex)
	then := a.NewPass(merge)
	otherwise := a.NewPass(merge)
	branch := a.NewBranch(cond, then, otherwise)
	b.start(branch)

	phi := a.NewPhi(merge)
	one := a.NewLiteral(ir.Number(1))
	two := a.NewLiteral(ir.Number(2))
	ret := a.NewReturn(phi)
	b.link(merge, ret)

	b.add(x, zero, le, cond)
	b.add(branch, then, otherwise, merge, one, two, phi, ret)

	// operand labels resolve once the branches have identities
	b.operand(phi, one, then)
	b.operand(phi, two, otherwise)

	return b.done()
}

func countingLoop() (*ir.Graph, error) {
	b := newBuilder()
	a := b.a

	header := a.NewMerge(ir.NoVertex)
	start := b.start(header)

	phi := a.NewPhi(header)
	zero := a.NewLiteral(ir.Number(0))
	one := a.NewLiteral(ir.Number(1))
	ten := a.NewLiteral(ir.Number(10))
	inc := a.NewBinary("+", phi, one)
	cond := a.NewBinary("<", phi, ten)

	body := a.NewPass(header)
	exit := a.NewReturn(phi)
	branch := a.NewBranch(cond, body, exit)
	b.link(header, branch)

	b.operand(phi, zero, start)
	b.operand(phi, inc, body)

	b.add(header, branch, body, exit, phi, zero, one, ten, inc, cond)
	return b.done()
}

func objects() (*ir.Graph, error) {
	b := newBuilder()
	a := b.a

	start := b.start(ir.NoVertex)
	n := a.NewParameter(0)
	ctor := a.NewSymbol("Point", start)
	printer := a.NewSymbol("print", start)
	x := a.NewLiteral(ir.Text("x"))
	describe := a.NewLiteral(ir.Text("describe"))

	ret := a.NewReturn(ir.NoVertex)
	method := a.NewCall(describe, nil, ir.NoVertex, ret)
	call := a.NewCall(printer, nil, ir.NoVertex, method)
	load := a.NewLoad(ir.NoVertex, x, call)
	inc := a.NewPostfixUnary("++", n)
	store := a.NewStore(ir.NoVertex, x, inc, load)
	alloc := a.NewAllocation("Point", ctor, store)
	b.link(start, alloc)

	a.SetTarget(a.Vertex(store).Shape().(*ir.Store).Object(), alloc)
	a.SetTarget(a.Vertex(load).Shape().(*ir.Load).Object(), alloc)
	a.SetTarget(a.Vertex(method).Shape().(*ir.Call).CallerObject(), alloc)
	if _, err := a.AddArgument(call, load); err != nil {
		b.fail(err)
	}

	b.add(n, ctor, printer, x, describe, alloc, inc, store, load, call, method, ret)
	return b.done()
}

func nestedScope() (*ir.Graph, error) {
	outer := newBuilder()
	a := outer.a

	outerStart := outer.start(ir.NoVertex)
	k := a.NewSymbol("k", outerStart)
	scale := a.NewSymbol("scale", outerStart)
	two := a.NewLiteral(ir.Number(2))
	ret := a.NewReturn(ir.NoVertex)
	call := a.NewCall(scale, []ir.VertexRef{two}, ir.NoVertex, ret)
	a.SetTarget(a.Vertex(ret).Shape().(*ir.Return).Value(), call)
	outer.link(outerStart, call)
	outer.add(k, scale, two, call, ret)

	// the routine body refers to k across the graph boundary
	inner := outer.sub()
	v := a.NewParameter(0)
	product := a.NewBinary("*", v, k)
	innerRet := a.NewReturn(product)
	inner.start(innerRet)
	inner.add(v, product, innerRet)
	outer.fail(inner.err)

	return outer.done()
}

func incompleteBranch() (*ir.Graph, error) {
	b := newBuilder()
	a := b.a

	cond := a.NewLiteral(ir.Bool(true))
	ret := a.NewReturn(ir.NoVertex)
	branch := a.NewBranch(cond, ret, ir.NoVertex)
	b.start(branch)
	b.add(branch, cond, ret)

	return b.done()
}

func lonelyPhi() (*ir.Graph, error) {
	b := newBuilder()
	a := b.a

	merge := a.NewMerge(ir.NoVertex)
	pass := a.NewPass(merge)
	b.start(pass)

	phi := a.NewPhi(merge)
	one := a.NewLiteral(ir.Number(1))
	ret := a.NewReturn(phi)
	b.link(merge, ret)
	b.operand(phi, one, pass)

	b.add(pass, merge, phi, one, ret)
	return b.done()
}
