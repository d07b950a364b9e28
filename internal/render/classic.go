package render

import "github.com/jonathan/resume-wizard/internal/types"

func init() {
	register(types.TemplateClassic, classicMarkup)
}

// classicMarkup is the traditional single-column serif layout: centered
// header, title-case section headings, plain black text.
const classicMarkup = `<style>
.classic { font-family: Georgia, "Times New Roman", serif; font-size: 11px; color: #000; }
.classic .name { font-size: 18px; font-weight: bold; text-align: center; margin-bottom: 4px; }
.classic .contact { font-size: 10px; text-align: center; margin-bottom: 8px; }
.classic .divider { border-bottom: 1px solid #000; margin-bottom: 10px; }
.classic h2 { font-size: 12px; font-weight: bold; margin: 10px 0 4px; }
.classic .row { display: flex; justify-content: space-between; }
.classic .dates { font-size: 10px; }
.classic .job-title { font-weight: bold; }
.classic ul { margin: 4px 0 0 14px; padding: 0; }
.classic li { margin-bottom: 2px; list-style-type: disc; }
.classic .honors { font-style: italic; font-size: 10px; }
</style>
<div class="classic">
  <div class="name">{{.Name}}</div>
  <div class="contact">{{.ContactLine}}{{if .LinkedIn}} | {{.LinkedIn}}{{end}}</div>
  <div class="divider"></div>
  {{if .Summary}}
  <section class="summary">
    <h2>Professional Summary</h2>
    <p>{{.Summary}}</p>
  </section>
  {{end}}
  {{if .Experience}}
  <section class="experience">
    <h2>Professional Experience</h2>
    {{range .Experience}}
    <div class="entry">
      <div class="job-title">{{.Title}}</div>
      <div class="row"><span>{{.Company}}</span><span class="dates">{{.Dates}}</span></div>
      {{if .Bullets}}
      <ul>
        {{range .Bullets}}<li>{{.}}</li>
        {{end}}
      </ul>
      {{end}}
    </div>
    {{end}}
  </section>
  {{end}}
  {{if .Education}}
  <section class="education">
    <h2>Education</h2>
    {{range .Education}}
    <div class="entry">
      <div class="job-title">{{.Degree}}</div>
      <div class="row"><span>{{.Institution}}</span><span class="dates">{{.Dates}}</span></div>
      {{if .Honors}}<div class="honors">{{.Honors}}</div>{{end}}
      {{if .GPA}}<div class="honors">GPA: {{.GPA}}</div>{{end}}
    </div>
    {{end}}
  </section>
  {{end}}
  {{if .Skills}}
  <section class="skills">
    <h2>Skills</h2>
    <p>{{.SkillsLine}}</p>
  </section>
  {{end}}
  {{if .Certifications}}
  <section class="certifications">
    <h2>Certifications</h2>
    {{range .Certifications}}<p>{{.}}</p>
    {{end}}
  </section>
  {{end}}
  {{if .Languages}}
  <section class="languages">
    <h2>Languages</h2>
    <p>{{range $i, $l := .Languages}}{{if $i}}, {{end}}{{$l}}{{end}}</p>
  </section>
  {{end}}
  {{if .Projects}}
  <section class="projects">
    <h2>Projects</h2>
    {{range .Projects}}
    <div class="entry">
      <div class="job-title">{{.Name}}</div>
      <p>{{.Description}}{{if .URL}} ({{.URL}}){{end}}</p>
    </div>
    {{end}}
  </section>
  {{end}}
</div>`
