// Package interview 实现访谈语料的上下文提取与就绪度评估
package interview

import "regexp"

// serviceEntry 服务词条：名称 + 触发词列表
// 切片顺序即平局裁决顺序，禁止重排
type serviceEntry struct {
	Name     string
	Triggers []string
}

// serviceLexicon AWS 服务词典
// 触发词在语料上按词边界计数，大小写不敏感
var serviceLexicon = []serviceEntry{
	{Name: "LAMBDA", Triggers: []string{"lambda", "funcion serverless", "serverless function"}},
	{Name: "EC2", Triggers: []string{"ec2", "t2.", "t3.", "m5.", "instancia virtual"}},
	{Name: "RDS", Triggers: []string{"rds", "aurora", "base de datos relacional", "relational database"}},
	{Name: "S3", Triggers: []string{"s3", "bucket", "object storage", "almacenamiento de objetos"}},
	{Name: "DYNAMODB", Triggers: []string{"dynamodb", "dynamo"}},
	{Name: "LEX", Triggers: []string{"amazon lex", "chatbot", "bot conversacional"}},
	{Name: "API_GATEWAY", Triggers: []string{"api gateway", "apigateway"}},
	{Name: "VPC", Triggers: []string{"vpc", "red privada virtual"}},
	{Name: "CLOUDFRONT", Triggers: []string{"cloudfront", "cdn"}},
	{Name: "SES", Triggers: []string{"ses", "simple email service", "correo transaccional"}},
	{Name: "SNS", Triggers: []string{"sns", "notificaciones push"}},
	{Name: "SQS", Triggers: []string{"sqs", "cola de mensajes", "message queue"}},
	{Name: "ECS", Triggers: []string{"ecs", "fargate", "contenedores"}},
	{Name: "EKS", Triggers: []string{"eks", "kubernetes"}},
	{Name: "ELB", Triggers: []string{"elb", "load balancer", "balanceador"}},
	{Name: "CLOUDWATCH", Triggers: []string{"cloudwatch"}},
	{Name: "IAM", Triggers: []string{"iam", "identity and access"}},
	{Name: "COGNITO", Triggers: []string{"cognito"}},
	{Name: "GLUE", Triggers: []string{"glue", "etl"}},
	{Name: "REDSHIFT", Triggers: []string{"redshift"}},
	{Name: "SAGEMAKER", Triggers: []string{"sagemaker"}},
	{Name: "BEDROCK", Triggers: []string{"bedrock"}},
	{Name: "WORKSPACES", Triggers: []string{"workspaces", "escritorio virtual"}},
	{Name: "BACKUP", Triggers: []string{"aws backup", "respaldo"}},
}

// serviceMatcher 编译后的服务触发词匹配器
type serviceMatcher struct {
	Name     string
	Patterns []*regexp.Regexp
}

var serviceMatchers = compileServiceLexicon()

func compileServiceLexicon() []serviceMatcher {
	out := make([]serviceMatcher, 0, len(serviceLexicon))
	for _, entry := range serviceLexicon {
		m := serviceMatcher{Name: entry.Name}
		for _, trigger := range entry.Triggers {
			expr := `(?i)\b` + regexp.QuoteMeta(trigger)
			if endsWithWordRune(trigger) {
				expr += `\b`
			}
			m.Patterns = append(m.Patterns, regexp.MustCompile(expr))
		}
		out = append(out, m)
	}
	return out
}

func endsWithWordRune(s string) bool {
	if s == "" {
		return false
	}
	last := s[len(s)-1]
	return last == '_' ||
		(last >= 'a' && last <= 'z') ||
		(last >= 'A' && last <= 'Z') ||
		(last >= '0' && last <= '9')
}

// needPattern 描述语句的需求表达模式（西/英双语）
var needPattern = regexp.MustCompile(`(?i)(necesito|requiero|quiero|busco|problema|soluci[oó]n|implementar|desarrollar|sistema|aplicaci[oó]n|crear|construir|i need|i want|to implement|to create)`)

// objectivePattern 目标语句的表达模式
var objectivePattern = regexp.MustCompile(`(?i)(objetivo|meta|prop[oó]sito|finalidad|\bpara\b|con el fin de|lograr|conseguir|beneficio|objective|goal|so that|achieve)`)

// sentenceBoundary 句子边界
var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// greetingSet 不能作为项目名的问候语
var greetingSet = map[string]struct{}{
	"hello":         {},
	"hi":            {},
	"hola":          {},
	"buenos dias":   {},
	"buenos días":   {},
	"buenas tardes": {},
}

// integralTerms 整体方案类项目的触发词（词边界匹配）
var integralTerms = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bmigraci[oó]n\b`),
	regexp.MustCompile(`(?i)\bmigration\b`),
	regexp.MustCompile(`(?i)new application|nueva aplicaci[oó]n`),
	regexp.MustCompile(`(?i)modernizaci[oó]n|modernization`),
	regexp.MustCompile(`(?i)\banalytics\b|\banal[ií]tica\b`),
	regexp.MustCompile(`(?i)\bsecurity\b|\bseguridad\b`),
	regexp.MustCompile(`(?i)\bml\b|machine learning`),
	regexp.MustCompile(`(?i)\biot\b`),
	regexp.MustCompile(`(?i)data lake`),
	regexp.MustCompile(`(?i)\bnetworking\b|\bredes\b`),
	regexp.MustCompile(`(?i)\bdrp\b`),
	regexp.MustCompile(`(?i)\bvdi\b`),
	regexp.MustCompile(`(?i)\bintegraci[oó]n\b|\bintegration\b`),
}

// quickTerms 快速服务类项目的触发词（词边界匹配）
var quickTerms = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bec2\b`),
	regexp.MustCompile(`(?i)\brds\b`),
	regexp.MustCompile(`(?i)\bses\b`),
	regexp.MustCompile(`(?i)\bvpn\b`),
	regexp.MustCompile(`(?i)\belb\b`),
	regexp.MustCompile(`(?i)\bs3\b`),
	regexp.MustCompile(`(?i)\bvpc\b`),
	regexp.MustCompile(`(?i)\bcloudfront\b`),
	regexp.MustCompile(`(?i)\bsso\b`),
	regexp.MustCompile(`(?i)\bbackup\b|\brespaldo\b`),
}

// projectLabelTerms 项目标签触发子串（子串匹配，兼容驼峰拼接的项目名）
var projectLabelTerms = []string{
	"project", "system", "application", "platform", "solution",
	"proyecto", "sistema", "aplicacion", "aplicación", "plataforma", "solucion", "solución",
}

// technicalTerms 技术细节触发词（词边界匹配）
var technicalTerms = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bsize\b|\btama[ñn]o\b`),
	regexp.MustCompile(`(?i)\binstance\b|\binstancia\b`),
	regexp.MustCompile(`(?i)\btype\b|\btipo\b`),
	regexp.MustCompile(`(?i)\bregion\b|\bregi[oó]n\b`),
	regexp.MustCompile(`(?i)\bvolume\b|\bvolumen\b`),
	regexp.MustCompile(`(?i)\bvpc\b`),
	regexp.MustCompile(`(?i)\bsecurity\b|\bseguridad\b`),
	regexp.MustCompile(`(?i)\bkey\b|\bllave\b`),
	regexp.MustCompile(`(?i)\d+\s*gb\b`),
	regexp.MustCompile(`(?i)\bmicro\b`),
	regexp.MustCompile(`(?i)\blarge\b`),
	regexp.MustCompile(`(?i)\bsmall\b|\bmedium\b`),
	regexp.MustCompile(`(?i)\bcpu\b|\bram\b`),
	regexp.MustCompile(`(?i)\bsubnet\b|\bsubred\b`),
	regexp.MustCompile(`(?i)\bport\b|\bpuerto\b`),
	regexp.MustCompile(`(?i)\bssh\b`),
}

// defaultObjectives 按主服务查找的兜底目标语句
var defaultObjectives = map[string]string{
	"LAMBDA":      "Automate business processes with serverless compute, paying only per execution.",
	"EC2":         "Provision right-sized compute capacity with full control over the operating system.",
	"RDS":         "Operate a managed relational database with automated backups and high availability.",
	"S3":          "Store and serve data durably at any scale with fine-grained access control.",
	"DYNAMODB":    "Achieve single-digit millisecond data access at any request volume.",
	"LEX":         "Deliver a conversational interface that resolves user requests without human agents.",
	"API_GATEWAY": "Expose secure, versioned APIs with throttling and monitoring built in.",
	"VPC":         "Isolate workloads in a private network with controlled ingress and egress.",
	"CLOUDFRONT":  "Reduce latency for global users through edge content delivery.",
	"SES":         "Send transactional email reliably with reputation management.",
	"ECS":         "Run containerized workloads with managed orchestration.",
	"EKS":         "Operate Kubernetes clusters without managing the control plane.",
	"ELB":         "Distribute traffic across instances for resilience and elasticity.",
	"WORKSPACES":  "Provide secure virtual desktops accessible from anywhere.",
}

// defaultObjectiveFallback 服务不在表中时的最终兜底
const defaultObjectiveFallback = "Deliver a scalable, secure, efficient AWS solution."
