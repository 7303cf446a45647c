package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/mozillazg/go-pinyin"
	"github.com/sysu-ecnc-dev/job-board/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// 实体 ID 只使用字母和数字，保证可以直接出现在 URL 中
var idAlphabet = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

func GenerateEntityID(prefix string) string {
	id := make([]rune, 12)
	for i := range id {
		id[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return prefix + "_" + string(id)
}

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "霞", "飞", "玲", "超",
	"华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var digits = "0123456789"

// 根据中文姓名生成拼音邮箱前缀，再补上随机数字避免重复
func GenerateEmailFromChineseName(chineseName string, emailDomainName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	local := strings.Join(pinyinArray, "")

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		local += string(digits[rand.Intn(len(digits))])
	}

	return local + "@" + emailDomainName
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	name := GenerateRandomChineseName()
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        GenerateEmailFromChineseName(name, emailDomainName),
		PasswordHash: string(passwordHash),
		Name:         name,
		Role:         domain.RoleUser,
	}

	return user, nil
}

var seedCompanies = []string{
	"星环科技", "云帆网络", "极光数据", "清源软件", "远山智能",
	"海纳信息", "晨曦互动", "方舟引擎", "青藤安全", "白鹭传媒",
}
var seedPositions = []string{
	"Go 后端工程师", "前端开发工程师", "数据分析师", "产品经理",
	"测试开发工程师", "运维工程师", "算法工程师", "UI 设计师",
}
var seedCities = []string{"广州", "深圳", "北京", "上海", "杭州", "成都", "武汉"}
var seedSkills = []string{
	"Go", "React", "TypeScript", "PostgreSQL", "Redis", "RabbitMQ",
	"Docker", "Kubernetes", "Python", "Linux", "gRPC", "Figma",
}

var jobTypes = []domain.JobType{
	domain.JobTypeFullTime,
	domain.JobTypePartTime,
	domain.JobTypeInternship,
	domain.JobTypeContract,
}
var workLocations = []domain.WorkLocation{
	domain.WorkLocationRemote,
	domain.WorkLocationInOffice,
	domain.WorkLocationHybrid,
}

func GenerateRandomListing() *domain.JobListing {
	company := seedCompanies[rand.Intn(len(seedCompanies))]
	position := seedPositions[rand.Intn(len(seedPositions))]

	skillNum := rand.Intn(4) + 2
	skills := make([]string, 0, skillNum)
	for _, i := range rand.Perm(len(seedSkills))[:skillNum] {
		skills = append(skills, seedSkills[i])
	}

	return &domain.JobListing{
		CompanyName:   company,
		Position:      position,
		MonthlySalary: int64(rand.Intn(30)+5) * 1000,
		JobType:       jobTypes[rand.Intn(len(jobTypes))],
		WorkLocation:  workLocations[rand.Intn(len(workLocations))],
		Location:      seedCities[rand.Intn(len(seedCities))],
		Description:   fmt.Sprintf("%s 招聘 %s，参与核心业务的设计与开发。", company, position),
		AboutCompany:  fmt.Sprintf("%s 是一家快速成长的互联网公司。", company),
		Skills:        skills,
	}
}
