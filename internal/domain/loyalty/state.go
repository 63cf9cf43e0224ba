package loyalty

// RewardThreshold é o número de cortes que libera o resgate.
const RewardThreshold = 10

// State é a máquina de estados do cartão por usuário: (cortes 0..10,
// resgatado). As transações reais acontecem em um único statement SQL no
// repositório; estas funções são a referência pura das transições e o que
// os testes exercitam.
type State struct {
	Cuts    int
	Claimed bool
}

// AddCut incrementa com teto em RewardThreshold. Não é válido em estado
// resgatado; nesse caso o chamador compõe StartCycle explicitamente.
func AddCut(s State) (State, bool) {
	if s.Claimed {
		return s, false
	}
	if s.Cuts < RewardThreshold {
		s.Cuts++
	}
	return s, true
}

// StartCycle abre um ciclo novo a partir do estado resgatado, já contando
// o corte que motivou a chamada.
func StartCycle(s State) (State, bool) {
	if !s.Claimed {
		return s, false
	}
	return State{Cuts: 1, Claimed: false}, true
}

// RemoveCut decrementa com piso em zero.
func RemoveCut(s State) State {
	if s.Cuts > 0 {
		s.Cuts--
	}
	return s
}

// Claim zera o contador e marca o resgate quando o limiar foi atingido.
func Claim(s State) (State, bool) {
	if s.Claimed || s.Cuts < RewardThreshold {
		return s, false
	}
	return State{Cuts: 0, Claimed: true}, true
}
