package domain_test

import (
	m "hotedit.dev/pkg/hotedit/internal/model"
)

const testModule m.ModuleID = "app"

func method(token uint32) m.MethodID {
	return m.MethodID{Module: testModule, Token: token, Version: 1}
}

func frame(id int, token uint32, offset int, path m.Path, span m.Span, flags m.ActiveStatementFlags) m.ActiveStatementReport {
	return m.ActiveStatementReport{
		StatementID:  id,
		Instruction:  m.InstructionID{Method: method(token), Offset: offset},
		DocumentPath: path,
		Span:         &span,
		Flags:        flags,
	}
}

func doc(id m.DocumentID, path m.Path, project m.ProjectID, supported bool) m.DocumentInfo {
	return m.DocumentInfo{
		ID:                      id,
		Path:                    path,
		Project:                 project,
		Module:                  testModule,
		Language:                "go",
		SupportsEditAndContinue: supported,
	}
}

func statement(ordinal int, token uint32, offset int, span m.Span, docs ...m.DocumentID) m.ActiveStatement {
	return m.ActiveStatement{
		Ordinal:     ordinal,
		Instruction: m.InstructionID{Method: method(token), Offset: offset},
		Span:        span,
		Flags:       m.FlagLeafFrame,
		Document:    docs[0],
		Documents:   docs,
	}
}

func mustBaseline(statements ...m.ActiveStatement) *m.Baseline {
	baseline, err := m.NewBaseline(statements)
	if err != nil {
		panic(err)
	}

	return baseline
}
